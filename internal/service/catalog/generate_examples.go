package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/service/processor"
)

// GenerateExamples builds pedagogical examples for one verb and tense,
// restricted to the selected preverbs. The tense is accepted either as the
// full name ("present") or the gloss tag ("Pres"). Pipeline failures are
// folded into the result's Error field; only an unknown verb or tense is a
// Go error.
func (s *Service) GenerateExamples(ctx context.Context, verbID, tense string, preverbs []string) (processor.PedagogicalResult, error) {
	verb, ok := s.verbs[verbID]
	if !ok {
		return processor.PedagogicalResult{}, fmt.Errorf("verb %q: %w", verbID, domain.ErrNotFound)
	}

	t, ok := parseTense(tense)
	if !ok {
		return processor.PedagogicalResult{}, fmt.Errorf("unknown tense %q: %w", tense, domain.ErrValidation)
	}

	result := s.generator.GeneratePedagogicalExamples(ctx, verb, t, preverbs)
	if result.Error != nil {
		s.log.WarnContext(ctx, "example generation failed",
			slog.String("verb_id", verbID),
			slog.String("tense", string(t)),
			slog.String("kind", result.Error.Kind),
		)
	}
	return result, nil
}

func parseTense(s string) (domain.Tense, bool) {
	if t := domain.Tense(s); t.IsValid() {
		return t, true
	}
	return domain.ParseTenseTag(s)
}
