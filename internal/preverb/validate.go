package preverb

import "github.com/kartuli-app/kartuli-backend/internal/domain"

// ValidateCompleteness checks the final (post-fallback) forms table: every
// person required by each present tense must carry a non-empty form. The
// placeholder "-" counts as present; it marks an authored absence, not a
// derivation gap. Any violation is a hard build failure.
func ValidateCompleteness(verbID string, forms map[string]map[domain.Tense]map[domain.Person]string) error {
	for preverb, byTense := range forms {
		for tense, persons := range byTense {
			for _, person := range tense.Persons() {
				if form, ok := persons[person]; !ok || form == "" {
					return &domain.FormGapError{
						VerbID:  verbID,
						Preverb: preverb,
						Tense:   tense,
						Person:  person,
					}
				}
			}
		}
	}
	return nil
}
