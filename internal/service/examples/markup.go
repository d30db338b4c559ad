package examples

import (
	"fmt"
	"html"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// roleSpan wraps a rendered role in a span carrying its semantic role and
// case, for downstream case highlighting.
func roleSpan(role domain.Role, c domain.Case, text string) string {
	return fmt.Sprintf(`<span data-role="%s" data-case="%s">%s</span>`,
		role, c, html.EscapeString(text))
}
