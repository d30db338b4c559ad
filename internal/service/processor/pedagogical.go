package processor

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/preverb"
)

// Error kinds reported to the rendering layer.
const (
	ErrorKindGlossFormat        = "gloss_format"
	ErrorKindCaseFormMissing    = "case_form_missing"
	ErrorKindArgumentResolution = "argument_resolution"
	ErrorKindFormGap            = "form_gap"
	ErrorKindStructural         = "structural"
	ErrorKindInternal           = "internal"
)

// ResultError is the structured error surfaced at the rendering boundary
// instead of a raw error string.
type ResultError struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Guidance string `json:"guidance,omitempty"`
}

// PedagogicalResult is the interactive per-request payload. Examples is
// keyed by preverb (or DefaultPreverbKey for single-preverb verbs).
type PedagogicalResult struct {
	Examples         map[string][]domain.Example `json:"examples"`
	RawGloss         string                      `json:"raw_gloss"`
	FallbackWarnings []string                    `json:"fallback_warnings,omitempty"`
	Error            *ResultError                `json:"error,omitempty"`
}

// GeneratePedagogicalExamples builds examples for one verb and tense,
// restricted to the selected preverbs. An empty selection means every
// preverb the verb declares. Errors never escape as Go errors: they are
// folded into the result's Error field so the rendering layer always has
// a payload to show.
func (p *Processor) GeneratePedagogicalExamples(ctx context.Context, verb *domain.Verb, tense domain.Tense, selectedPreverbs []string) PedagogicalResult {
	res, err := p.pedagogical(ctx, verb, tense, selectedPreverbs)
	if err != nil {
		return PedagogicalResult{Error: resultError(err)}
	}
	return res
}

func (p *Processor) pedagogical(ctx context.Context, verb *domain.Verb, tense domain.Tense, selectedPreverbs []string) (PedagogicalResult, error) {
	if err := validateVerb(verb); err != nil {
		return PedagogicalResult{}, err
	}
	conj, ok := verb.Conjugations[tense]
	if !ok {
		return PedagogicalResult{}, &domain.StructuralError{
			VerbID: verb.ID,
			Field:  "conjugations",
			Reason: fmt.Sprintf("verb has no %s tense", tense),
		}
	}

	keys := verb.PreverbKeys()
	selected := selectPreverbs(verb, keys, selectedPreverbs)
	if len(selected) == 0 {
		return PedagogicalResult{}, &domain.StructuralError{
			VerbID: verb.ID,
			Field:  "preverb_config",
			Reason: "selected preverbs do not match any declared preverb",
		}
	}

	// Derivation and fallback resolution run over every preverb, not just
	// the selected ones: a selected preverb may source its forms from an
	// unselected one.
	forms := make(map[string]map[domain.Tense]map[domain.Person]string, len(keys))
	for _, key := range keys {
		forms[key] = make(map[domain.Tense]map[domain.Person]string)
		if key == domain.DefaultPreverbKey {
			forms[key][tense] = maps.Clone(conj.Forms)
			continue
		}
		derived := preverb.DeriveForms(conj.Forms, verb.PreverbConfig.DefaultPreverb, key, verb.PreverbRules)
		forms[key][tense] = maps.Clone(derived)
	}

	translations, notices := preverb.ResolveFallbacks(forms, verb.PreverbRules, verb.EnglishTranslations)

	result := PedagogicalResult{
		Examples: make(map[string][]domain.Example, len(selected)),
		RawGloss: conj.RawGloss,
	}
	for _, n := range notices {
		if n.Tense != tense || !contains(selected, n.Preverb) {
			continue
		}
		result.FallbackWarnings = append(result.FallbackWarnings,
			fmt.Sprintf("preverb %q uses %q forms for %s", n.Preverb, n.Fallback, n.Tense))
	}

	for _, key := range selected {
		parsed, err := p.parseGloss(conj.RawGloss, key)
		if err != nil {
			return PedagogicalResult{}, fmt.Errorf("verb %q: tense %s: %w", verb.ID, tense, err)
		}
		list, err := p.exampleList(ctx, verb, tense, key, parsed, forms[key][tense], translations)
		if err != nil {
			return PedagogicalResult{}, err
		}
		result.Examples[key] = list
	}

	return result, nil
}

// selectPreverbs intersects the caller's selection with the verb's
// declared preverbs, in sorted order. Nil selection means all of them.
func selectPreverbs(verb *domain.Verb, keys, selected []string) []string {
	if len(selected) == 0 {
		out := make([]string, len(keys))
		copy(out, keys)
		sort.Strings(out)
		return out
	}
	var out []string
	for _, s := range selected {
		if contains(keys, s) {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// resultError maps a pipeline error onto the structured boundary error,
// with remediation guidance pointing at the dataset field to fix.
func resultError(err error) *ResultError {
	var glossErr *domain.GlossFormatError
	var caseErr *domain.CaseFormMissingError
	var argErr *domain.ArgumentResolutionError
	var gapErr *domain.FormGapError
	var structErr *domain.StructuralError

	switch {
	case errors.As(err, &glossErr):
		return &ResultError{
			Kind:     ErrorKindGlossFormat,
			Message:  glossErr.Error(),
			Guidance: "Fix the raw_gloss string for this tense; see the gloss notation reference for valid tags.",
		}
	case errors.As(err, &caseErr):
		return &ResultError{
			Kind:     ErrorKindCaseFormMissing,
			Message:  err.Error(),
			Guidance: fmt.Sprintf("Add the missing case form for %q to the noun or adjective database.", caseErr.Key),
		}
	case errors.As(err, &argErr):
		re := &ResultError{
			Kind:    ErrorKindArgumentResolution,
			Message: argErr.Error(),
		}
		re.Guidance = argErr.Hint
		if re.Guidance == "" {
			re.Guidance = fmt.Sprintf("Add a %s entry for this person to the verb's syntax.arguments block.", argErr.Role)
		}
		return re
	case errors.As(err, &gapErr):
		return &ResultError{
			Kind:     ErrorKindFormGap,
			Message:  gapErr.Error(),
			Guidance: "Fill in the missing conjugation form, or mark it with \"-\" if it genuinely does not exist.",
		}
	case errors.As(err, &structErr):
		return &ResultError{
			Kind:     ErrorKindStructural,
			Message:  structErr.Error(),
			Guidance: fmt.Sprintf("Check the %q field of this verb's dataset entry.", structErr.Field),
		}
	default:
		return &ResultError{Kind: ErrorKindInternal, Message: err.Error()}
	}
}
