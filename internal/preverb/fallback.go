package preverb

import (
	"maps"
	"sort"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// ResolveFallbacks applies tense-specific fallback rules after every
// preverb's base derivation is complete: for each rule P→Q at tense T where
// both P and Q have forms for T, P's forms are replaced with a copy of the
// effective source's. Rule, form, and translation keys are matched with
// hyphen formatting stripped, so "წა-" in one table resolves against "წა"
// in another. Chains (P→Q, Q→R at the same tense) are followed to their
// end before copying, so every preverb in the chain ends up byte-identical
// to the terminal source; a cycle stops at the last preverb before the
// repeat.
//
// The forms table is updated in place (it is the caller's freshly derived
// table, never the source dataset). Translations are not mutated: the
// returned table is a copy with fallback-source translations propagated, so
// a translation can never describe a different form than the one displayed.
// A fallback source without a translation for the tense is skipped without
// error.
//
// Returned notices carry the forms table's spelling of each preverb and
// are ordered by preverb then tense for deterministic output.
func ResolveFallbacks(
	forms map[string]map[domain.Tense]map[domain.Person]string,
	rules domain.PreverbRules,
	translations map[string]map[domain.Tense]string,
) (map[string]map[domain.Tense]string, []domain.FallbackNotice) {
	outTr := make(map[string]map[domain.Tense]string, len(translations))
	for preverb, byTense := range translations {
		outTr[preverb] = maps.Clone(byTense)
	}

	formKey := make(map[string]string, len(forms))
	for k := range forms {
		formKey[stripHyphens(k)] = k
	}
	trKey := make(map[string]string, len(outTr))
	for k := range outTr {
		trKey[stripHyphens(k)] = k
	}

	// Rule table on stripped spellings.
	ruleFor := make(map[string]map[domain.Tense]string, len(rules.TenseSpecificFallbacks))
	for p, byTense := range rules.TenseSpecificFallbacks {
		np := stripHyphens(p)
		if ruleFor[np] == nil {
			ruleFor[np] = make(map[domain.Tense]string, len(byTense))
		}
		for t, q := range byTense {
			ruleFor[np][t] = stripHyphens(q)
		}
	}

	preverbs := make([]string, 0, len(ruleFor))
	for p := range ruleFor {
		preverbs = append(preverbs, p)
	}
	sort.Strings(preverbs)

	var notices []domain.FallbackNotice
	for _, np := range preverbs {
		byTense := ruleFor[np]
		tenses := make([]domain.Tense, 0, len(byTense))
		for t := range byTense {
			tenses = append(tenses, t)
		}
		sort.Slice(tenses, func(i, j int) bool { return tenses[i] < tenses[j] })

		for _, tense := range tenses {
			nq := chainEnd(ruleFor, np, tense)

			pk, pok := formKey[np]
			qk, qok := formKey[nq]
			if !pok || !qok || forms[pk][tense] == nil || forms[qk][tense] == nil {
				continue
			}
			forms[pk][tense] = maps.Clone(forms[qk][tense])

			notice := domain.FallbackNotice{Preverb: pk, Fallback: qk, Tense: tense}
			if src, ok := trKey[nq]; ok {
				if tr, ok := outTr[src][tense]; ok && tr != "" {
					dst, ok := trKey[np]
					if !ok {
						dst = pk
						trKey[np] = dst
					}
					if outTr[dst] == nil {
						outTr[dst] = make(map[domain.Tense]string)
					}
					outTr[dst][tense] = tr
					notice.TranslationCopied = true
				}
			}
			notices = append(notices, notice)
		}
	}
	return outTr, notices
}

// chainEnd follows fallback rules from p at the given tense to the
// terminal source. The terminal preverb has no rule for the tense, so its
// forms are never overwritten and reading them live is order-independent.
func chainEnd(ruleFor map[string]map[domain.Tense]string, p string, tense domain.Tense) string {
	q := ruleFor[p][tense]
	seen := map[string]bool{p: true, q: true}
	for {
		next, ok := ruleFor[q][tense]
		if !ok || seen[next] {
			return q
		}
		seen[next] = true
		q = next
	}
}
