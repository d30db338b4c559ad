// Package preverb derives preverb-specific verb forms from the authored
// default-preverb forms, resolves tense-specific fallback rules, and
// validates form completeness after derivation.
package preverb

import (
	"strings"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// stripHyphens removes the hyphen formatting some datasets use when writing
// preverbs ("მი-" vs "მი"). Comparisons and prefix tests always run on the
// stripped text.
func stripHyphens(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

// DeriveForms computes the per-person forms for targetPreverb from the
// authored forms, which are keyed to defaultPreverb.
//
// Rules, per person:
//   - the placeholder "-" and empty forms pass through unchanged: a
//     legitimately absent form is not an error;
//   - a form starting with the default preverb's text has that prefix
//     stripped and re-prefixed with the target's replacement text
//     (rules.Replacements, falling back to the target's own text);
//   - a form that does not start with the expected prefix is irregular and
//     passes through unchanged.
//
// When target equals the default preverb the input map is returned as-is.
func DeriveForms(base map[domain.Person]string, defaultPreverb, targetPreverb string, rules domain.PreverbRules) map[domain.Person]string {
	def := stripHyphens(defaultPreverb)
	target := stripHyphens(targetPreverb)
	if target == def {
		return base
	}

	replacement := target
	if r, ok := replacementFor(rules.Replacements, target); ok {
		replacement = r
	}

	out := make(map[domain.Person]string, len(base))
	for person, form := range base {
		if form == "" || form == domain.FormPlaceholder {
			out[person] = form
			continue
		}
		if def != "" && strings.HasPrefix(form, def) {
			out[person] = replacement + strings.TrimPrefix(form, def)
			continue
		}
		// Irregular form: accepted, not flagged.
		out[person] = form
	}
	return out
}

// replacementFor resolves the authored replacement text for a target
// preverb. Replacement keys are matched with hyphens stripped, like every
// other preverb comparison. target must already be stripped.
func replacementFor(replacements map[string]string, target string) (string, bool) {
	if r, ok := replacements[target]; ok {
		return stripHyphens(r), true
	}
	for k, r := range replacements {
		if stripHyphens(k) == target {
			return stripHyphens(r), true
		}
	}
	return "", false
}
