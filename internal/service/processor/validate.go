package processor

import (
	"strings"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// validateVerb checks the structural invariants of a verb record before
// any derivation or example generation is attempted. Violations fail the
// whole verb.
func validateVerb(verb *domain.Verb) error {
	if verb.ID == "" {
		return &domain.StructuralError{VerbID: verb.Georgian, Field: "id", Reason: "empty"}
	}
	if verb.Georgian == "" {
		return &domain.StructuralError{VerbID: verb.ID, Field: "georgian", Reason: "empty"}
	}
	if len(verb.Conjugations) == 0 {
		return &domain.StructuralError{VerbID: verb.ID, Field: "conjugations", Reason: "no tenses"}
	}
	for tense := range verb.Conjugations {
		if !tense.IsValid() {
			return &domain.StructuralError{VerbID: verb.ID, Field: "conjugations", Reason: "unknown tense " + string(tense)}
		}
	}

	cfg := verb.PreverbConfig
	if cfg.HasMultiplePreverbs {
		if cfg.DefaultPreverb == "" {
			return &domain.StructuralError{VerbID: verb.ID, Field: "preverb_config.default_preverb", Reason: "empty with multiple preverbs"}
		}
		if len(cfg.AvailablePreverbs) == 0 {
			return &domain.StructuralError{VerbID: verb.ID, Field: "preverb_config.available_preverbs", Reason: "empty with multiple preverbs"}
		}
		if !containsStripped(cfg.AvailablePreverbs, cfg.DefaultPreverb) {
			return &domain.StructuralError{VerbID: verb.ID, Field: "preverb_config.default_preverb", Reason: "not in available_preverbs"}
		}
	}

	for p, byTense := range verb.PreverbRules.TenseSpecificFallbacks {
		if !containsStripped(cfg.AvailablePreverbs, p) {
			return &domain.StructuralError{VerbID: verb.ID, Field: "preverb_rules.tense_specific_fallbacks", Reason: "unknown preverb " + p}
		}
		for tense, q := range byTense {
			if !tense.IsValid() {
				return &domain.StructuralError{VerbID: verb.ID, Field: "preverb_rules.tense_specific_fallbacks", Reason: "unknown tense " + string(tense)}
			}
			if !containsStripped(cfg.AvailablePreverbs, q) {
				return &domain.StructuralError{VerbID: verb.ID, Field: "preverb_rules.tense_specific_fallbacks", Reason: "unknown fallback preverb " + q}
			}
		}
	}
	return nil
}

// containsStripped compares preverbs with hyphen formatting removed, so
// "მი-" in the config matches "მი" in a rule.
func containsStripped(haystack []string, needle string) bool {
	n := strings.ReplaceAll(needle, "-", "")
	for _, h := range haystack {
		if strings.ReplaceAll(h, "-", "") == n {
			return true
		}
	}
	return false
}
