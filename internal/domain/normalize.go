package domain

import (
	"strings"
)

// NormalizeKey prepares lexicon keys and verb ids for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Georgian script, hyphens, and apostrophes are preserved.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	key = strings.ToLower(key)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(key))
	prevSpace := false
	for _, r := range key {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
