// Package processor drives the whole pipeline across every verb, tense,
// and preverb: structural validation, preverb form derivation, fallback
// resolution, gloss analysis, and example generation. Derivation and
// assembly stay in their own packages; this one only orchestrates,
// memoizes, and fails loudly.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/gloss"
	"github.com/kartuli-app/kartuli-backend/internal/lexicon"
	"github.com/kartuli-app/kartuli-backend/internal/preverb"
	"github.com/kartuli-app/kartuli-backend/internal/service/examples"
)

// Config holds cache sizes. A zero size disables the cache; output is
// identical either way because the caches are pure memoization.
type Config struct {
	GlossCacheSize   int
	ExampleCacheSize int
}

// Processor builds ProcessedVerb records.
type Processor struct {
	log       *slog.Logger
	assembler *examples.Assembler

	glossCache   *lru.Cache[glossKey, *domain.ParsedGloss]
	exampleCache *lru.Cache[exampleKey, []domain.Example]
}

// New creates a Processor over the given lexicon resolver.
func New(log *slog.Logger, lex *lexicon.Resolver, cfg Config) *Processor {
	return &Processor{
		log:          log,
		assembler:    examples.New(log, lex),
		glossCache:   newCache[glossKey, *domain.ParsedGloss](cfg.GlossCacheSize),
		exampleCache: newCache[exampleKey, []domain.Example](cfg.ExampleCacheSize),
	}
}

// Stats summarizes a batch run.
type Stats struct {
	VerbsProcessed    int
	ExamplesGenerated int
	Warnings          int
	Duration          time.Duration
}

// ProcessAll processes every verb in deterministic id order. The first
// failure aborts the run: a partially-correct dataset must not render.
func (p *Processor) ProcessAll(ctx context.Context, verbs map[string]*domain.Verb) (map[string]*domain.ProcessedVerb, Stats, error) {
	start := time.Now()

	ids := make([]string, 0, len(verbs))
	for id := range verbs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make(map[string]*domain.ProcessedVerb, len(verbs))
	var stats Stats
	for _, id := range ids {
		processed, err := p.ProcessVerb(ctx, verbs[id])
		if err != nil {
			return nil, stats, fmt.Errorf("process verb %q: %w", id, err)
		}
		out[id] = processed
		stats.VerbsProcessed++
		stats.Warnings += len(processed.Generated.Fallbacks)
		for _, byTense := range processed.Generated.Examples {
			for _, list := range byTense {
				stats.ExamplesGenerated += len(list)
			}
		}
	}
	stats.Duration = time.Since(start)

	p.log.Info("processing completed",
		slog.Int("verbs", stats.VerbsProcessed),
		slog.Int("examples", stats.ExamplesGenerated),
		slog.Duration("duration", stats.Duration),
	)
	return out, stats, nil
}

// ProcessVerb runs the full pipeline for one verb: structural validation,
// per-preverb form derivation, tense-specific fallback resolution (a
// barrier: it completes across all preverbs before anything reads the
// forms), completeness validation, then gloss analysis and examples.
func (p *Processor) ProcessVerb(ctx context.Context, verb *domain.Verb) (*domain.ProcessedVerb, error) {
	if err := validateVerb(verb); err != nil {
		return nil, err
	}

	keys := verb.PreverbKeys()
	forms := make(map[string]map[domain.Tense]map[domain.Person]string, len(keys))
	for _, key := range keys {
		forms[key] = make(map[domain.Tense]map[domain.Person]string)
	}
	for _, tense := range domain.AllTenses() {
		conj, ok := verb.Conjugations[tense]
		if !ok {
			continue
		}
		for _, key := range keys {
			if key == domain.DefaultPreverbKey {
				forms[key][tense] = maps.Clone(conj.Forms)
				continue
			}
			derived := preverb.DeriveForms(conj.Forms, verb.PreverbConfig.DefaultPreverb, key, verb.PreverbRules)
			forms[key][tense] = maps.Clone(derived)
		}
	}

	translations, notices := preverb.ResolveFallbacks(forms, verb.PreverbRules, verb.EnglishTranslations)

	if err := preverb.ValidateCompleteness(verb.ID, forms); err != nil {
		return nil, err
	}

	generated := domain.GeneratedData{
		Examples:      make(map[string]map[domain.Tense][]domain.Example, len(keys)),
		GlossAnalysis: make(map[string]map[domain.Tense]domain.GlossAnalysis, len(keys)),
		PreverbForms:  forms,
		Translations:  translations,
		Fallbacks:     notices,
	}

	for _, key := range keys {
		generated.Examples[key] = make(map[domain.Tense][]domain.Example)
		generated.GlossAnalysis[key] = make(map[domain.Tense]domain.GlossAnalysis)

		for _, tense := range domain.AllTenses() {
			conj, ok := verb.Conjugations[tense]
			if !ok {
				continue
			}

			parsed, err := p.parseGloss(conj.RawGloss, key)
			if err != nil {
				return nil, fmt.Errorf("verb %q: tense %s: %w", verb.ID, tense, err)
			}
			analysis := domain.GlossAnalysis{RawGloss: conj.RawGloss, ParsedGloss: *parsed}
			if key != domain.DefaultPreverbKey {
				analysis.EffectivePreverb = key
			}
			generated.GlossAnalysis[key][tense] = analysis

			list, err := p.exampleList(ctx, verb, tense, key, parsed, forms[key][tense], translations)
			if err != nil {
				return nil, err
			}
			generated.Examples[key][tense] = list
		}
	}

	return &domain.ProcessedVerb{Base: *verb, Generated: generated}, nil
}

// parseGloss memoizes gloss parsing per (raw gloss, preverb).
func (p *Processor) parseGloss(raw, preverbKey string) (*domain.ParsedGloss, error) {
	key := glossKey{raw: raw, preverb: preverbKey}
	if cached, ok := cacheGet(p.glossCache, key); ok {
		return cached, nil
	}

	parsed, err := gloss.Parse(raw)
	if err != nil {
		return nil, err
	}
	if parsed.Preverb == "" && preverbKey != domain.DefaultPreverbKey {
		parsed.Preverb = preverbKey
	}

	cacheAdd(p.glossCache, key, parsed)
	return parsed, nil
}

// exampleList memoizes the per-(verb, tense, preverb) example slice.
func (p *Processor) exampleList(
	ctx context.Context,
	verb *domain.Verb,
	tense domain.Tense,
	preverbKey string,
	parsed *domain.ParsedGloss,
	personForms map[domain.Person]string,
	translations map[string]map[domain.Tense]string,
) ([]domain.Example, error) {
	key := exampleKey{verbID: verb.ID, tense: tense, preverb: preverbKey}
	if cached, ok := cacheGet(p.exampleCache, key); ok {
		return cached, nil
	}

	translation, ok := lookupTranslation(translations, preverbKey, tense)
	if !ok {
		return nil, &domain.StructuralError{
			VerbID: verb.ID,
			Field:  "english_translations",
			Reason: fmt.Sprintf("no translation for preverb %q tense %s", preverbKey, tense),
		}
	}

	var list []domain.Example
	for _, person := range tense.Persons() {
		form := personForms[person]
		if form == "" || form == domain.FormPlaceholder {
			// An authored absence: warn and produce no example.
			p.log.Warn("no form for person",
				slog.String("verb_id", verb.ID),
				slog.String("tense", string(tense)),
				slog.String("person", string(person)),
				slog.String("preverb", preverbKey),
			)
			continue
		}

		ex, err := p.assembler.Build(ctx, examples.BuildInput{
			Verb:        verb,
			Gloss:       parsed,
			Tense:       tense,
			Person:      person,
			Preverb:     preverbKey,
			Form:        form,
			Translation: translation,
		})
		if err != nil {
			return nil, err
		}
		list = append(list, ex)
	}

	cacheAdd(p.exampleCache, key, list)
	return list, nil
}

// lookupTranslation resolves the effective English base translation for a
// preverb and tense, falling back to the default table. Keys are matched
// with hyphen formatting stripped, like every other preverb comparison.
func lookupTranslation(translations map[string]map[domain.Tense]string, preverbKey string, tense domain.Tense) (string, bool) {
	if t, ok := translationFor(translations, preverbKey, tense); ok {
		return t, true
	}
	return translationFor(translations, domain.DefaultPreverbKey, tense)
}

func translationFor(translations map[string]map[domain.Tense]string, key string, tense domain.Tense) (string, bool) {
	if t, ok := translations[key][tense]; ok && t != "" {
		return t, true
	}
	stripped := strings.ReplaceAll(key, "-", "")
	for k, byTense := range translations {
		if strings.ReplaceAll(k, "-", "") != stripped {
			continue
		}
		if t, ok := byTense[tense]; ok && t != "" {
			return t, true
		}
	}
	return "", false
}
