package processor

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/lexicon"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func fixtureStore() *lexicon.Tables {
	subjects := map[string]lexicon.Entry{
		"boy": {
			Cases:   lexicon.CaseSet{Nom: "ბიჭი", Erg: "ბიჭმა", Dat: "ბიჭს"},
			Plural:  lexicon.CaseSet{Nom: "ბიჭები", Erg: "ბიჭებმა", Dat: "ბიჭებს"},
			English: lexicon.EnglishText{Singular: "boy", Plural: "boys"},
		},
	}
	directObjects := map[string]lexicon.Entry{
		"letter": {
			Cases:   lexicon.CaseSet{Nom: "წერილი", Dat: "წერილს"},
			English: lexicon.EnglishText{Singular: "letter"},
		},
	}
	return lexicon.NewTables(subjects, directObjects, nil, nil)
}

func subjectArgs() map[domain.Role]map[domain.Person]domain.ArgumentRef {
	refs := make(map[domain.Person]domain.ArgumentRef)
	for _, p := range domain.AllPersons() {
		refs[p] = domain.ArgumentRef{Noun: "boy", Adjective: "none"}
	}
	return map[domain.Role]map[domain.Person]domain.ArgumentRef{
		domain.RoleSubject: refs,
	}
}

// goVerb models a motion verb with two preverbs, authored against the
// default preverb მი, where წა has no authored present forms and falls
// back to მი for that tense.
func goVerb() *domain.Verb {
	return &domain.Verb{
		ID:       "svla",
		Georgian: "სვლა",
		Conjugations: map[domain.Tense]domain.Conjugation{
			domain.TensePresent: {
				RawGloss: "V Act Pres <S> <S:Nom>",
				Forms: map[domain.Person]string{
					domain.Person1Sg: "მივდივარ",
					domain.Person2Sg: "მიდიხარ",
					domain.Person3Sg: "მიდის",
					domain.Person1Pl: "მივდივართ",
					domain.Person2Pl: "მიდიხართ",
					domain.Person3Pl: "მიდიან",
				},
			},
			domain.TenseFuture: {
				RawGloss: "V Act Fut <S> <S:Nom>",
				Forms: map[domain.Person]string{
					domain.Person1Sg: "მივალ",
					domain.Person2Sg: "მიხვალ",
					domain.Person3Sg: "მივა",
					domain.Person1Pl: "მივალთ",
					domain.Person2Pl: "მიხვალთ",
					domain.Person3Pl: "მივლენ",
				},
			},
		},
		PreverbConfig: domain.PreverbConfig{
			HasMultiplePreverbs: true,
			DefaultPreverb:      "მი",
			AvailablePreverbs:   []string{"მი", "წა"},
		},
		PreverbRules: domain.PreverbRules{
			TenseSpecificFallbacks: map[string]map[domain.Tense]string{
				"წა": {domain.TensePresent: "მი"},
			},
		},
		EnglishTranslations: map[string]map[domain.Tense]string{
			"მი": {
				domain.TensePresent: "go",
				domain.TenseFuture:  "will go",
			},
			"წა": {
				domain.TenseFuture: "will go away",
			},
		},
		Syntax: domain.Syntax{Arguments: subjectArgs()},
	}
}

// writeVerb is a plain single-preverb transitive verb.
func writeVerb() *domain.Verb {
	objectRefs := make(map[domain.Person]domain.ArgumentRef)
	for _, p := range domain.AllPersons() {
		objectRefs[p] = domain.ArgumentRef{Noun: "letter", Adjective: "none"}
	}
	args := subjectArgs()
	args[domain.RoleDirectObject] = objectRefs

	return &domain.Verb{
		ID:       "cera",
		Georgian: "წერა",
		Conjugations: map[domain.Tense]domain.Conjugation{
			domain.TensePresent: {
				RawGloss: "V Act Pres <S-DO> <S:Nom> <DO:Dat>",
				Forms: map[domain.Person]string{
					domain.Person1Sg: "ვწერ",
					domain.Person2Sg: "წერ",
					domain.Person3Sg: "წერს",
					domain.Person1Pl: "ვწერთ",
					domain.Person2Pl: "წერთ",
					domain.Person3Pl: "წერენ",
				},
			},
		},
		EnglishTranslations: map[string]map[domain.Tense]string{
			domain.DefaultPreverbKey: {domain.TensePresent: "write"},
		},
		Syntax: domain.Syntax{Arguments: args},
	}
}

func newProcessor(cfg Config) *Processor {
	return New(slog.Default(), lexicon.NewResolver(fixtureStore()), cfg)
}

// ---------------------------------------------------------------------------
// ProcessVerb
// ---------------------------------------------------------------------------

func TestProcessVerb_SinglePreverb(t *testing.T) {
	t.Parallel()

	processed, err := newProcessor(Config{}).ProcessVerb(context.Background(), writeVerb())
	require.NoError(t, err)

	examples := processed.Generated.Examples[domain.DefaultPreverbKey][domain.TensePresent]
	require.Len(t, examples, 6)

	var third *domain.Example
	for i := range examples {
		if examples[i].Person == domain.Person3Sg {
			third = &examples[i]
		}
	}
	require.NotNil(t, third)
	assert.Equal(t, "ბიჭი წერილს წერს", third.Georgian)
	assert.Equal(t, "the boy writes letter", third.English)

	analysis := processed.Generated.GlossAnalysis[domain.DefaultPreverbKey][domain.TensePresent]
	assert.Equal(t, "V Act Pres <S-DO> <S:Nom> <DO:Dat>", analysis.RawGloss)
	assert.Empty(t, analysis.EffectivePreverb)
	assert.Equal(t, domain.PatternSDO, analysis.Pattern)

	assert.Empty(t, processed.Generated.Fallbacks)
}

func TestProcessVerb_DerivesPreverbForms(t *testing.T) {
	t.Parallel()

	processed, err := newProcessor(Config{}).ProcessVerb(context.Background(), goVerb())
	require.NoError(t, err)

	forms := processed.Generated.PreverbForms
	assert.Equal(t, "მივა", forms["მი"][domain.TenseFuture][domain.Person3Sg])
	assert.Equal(t, "წავა", forms["წა"][domain.TenseFuture][domain.Person3Sg])

	analysis := processed.Generated.GlossAnalysis["წა"][domain.TenseFuture]
	assert.Equal(t, "წა", analysis.EffectivePreverb)
}

func TestProcessVerb_TenseSpecificFallback(t *testing.T) {
	t.Parallel()

	processed, err := newProcessor(Config{}).ProcessVerb(context.Background(), goVerb())
	require.NoError(t, err)

	forms := processed.Generated.PreverbForms
	// The fallback copies the source tense table wholesale, so the two
	// preverbs are byte-identical for the present.
	assert.Equal(t, forms["მი"][domain.TensePresent], forms["წა"][domain.TensePresent])
	assert.Equal(t, "მიდის", forms["წა"][domain.TensePresent][domain.Person3Sg])

	tr := processed.Generated.Translations
	assert.Equal(t, "go", tr["წა"][domain.TensePresent])
	// Tenses without a fallback keep their own translation.
	assert.Equal(t, "will go away", tr["წა"][domain.TenseFuture])

	require.Len(t, processed.Generated.Fallbacks, 1)
	notice := processed.Generated.Fallbacks[0]
	assert.Equal(t, "წა", notice.Preverb)
	assert.Equal(t, "მი", notice.Fallback)
	assert.Equal(t, domain.TensePresent, notice.Tense)
	assert.True(t, notice.TranslationCopied)
}

func TestProcessVerb_HyphenSpelledPreverbsStillFallBack(t *testing.T) {
	t.Parallel()

	// Datasets sometimes write preverbs with trailing hyphens in
	// preverb_config while rules and translations use the bare spelling.
	verb := goVerb()
	verb.PreverbConfig.DefaultPreverb = "მი-"
	verb.PreverbConfig.AvailablePreverbs = []string{"მი-", "წა-"}

	processed, err := newProcessor(Config{}).ProcessVerb(context.Background(), verb)
	require.NoError(t, err)

	forms := processed.Generated.PreverbForms
	assert.Equal(t, forms["მი-"][domain.TensePresent], forms["წა-"][domain.TensePresent])
	assert.Equal(t, "მივდივარ", forms["წა-"][domain.TensePresent][domain.Person1Sg])

	require.Len(t, processed.Generated.Fallbacks, 1)
	notice := processed.Generated.Fallbacks[0]
	assert.Equal(t, "წა-", notice.Preverb)
	assert.Equal(t, "მი-", notice.Fallback)
	assert.True(t, notice.TranslationCopied)
}

func TestProcessVerb_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	verb := goVerb()
	_, err := newProcessor(Config{}).ProcessVerb(context.Background(), verb)
	require.NoError(t, err)

	// The fallback annotations live on the output, never the input.
	_, ok := verb.EnglishTranslations["წა"][domain.TensePresent]
	assert.False(t, ok)
	assert.Equal(t, "მივდივარ", verb.Conjugations[domain.TensePresent].Forms[domain.Person1Sg])
}

func TestProcessVerb_CacheDisabledEquivalence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cached, err := newProcessor(Config{GlossCacheSize: 64, ExampleCacheSize: 64}).ProcessVerb(ctx, goVerb())
	require.NoError(t, err)
	uncached, err := newProcessor(Config{}).ProcessVerb(ctx, goVerb())
	require.NoError(t, err)

	assert.Equal(t, uncached, cached)
}

func TestProcessVerb_PlaceholderFormProducesNoExample(t *testing.T) {
	t.Parallel()

	verb := writeVerb()
	conj := verb.Conjugations[domain.TensePresent]
	conj.Forms[domain.Person1Pl] = domain.FormPlaceholder

	processed, err := newProcessor(Config{}).ProcessVerb(context.Background(), verb)
	require.NoError(t, err)

	examples := processed.Generated.Examples[domain.DefaultPreverbKey][domain.TensePresent]
	assert.Len(t, examples, 5)
	for _, ex := range examples {
		assert.NotEqual(t, domain.Person1Pl, ex.Person)
	}
}

func TestProcessVerb_ImperativeOnlySecondPersons(t *testing.T) {
	t.Parallel()

	verb := writeVerb()
	verb.Conjugations[domain.TenseImperative] = domain.Conjugation{
		RawGloss: "V Act Impv <S-DO> <S:Nom> <DO:Dat>",
		Forms: map[domain.Person]string{
			domain.Person2Sg: "დაწერე",
			domain.Person2Pl: "დაწერეთ",
		},
	}
	verb.EnglishTranslations[domain.DefaultPreverbKey][domain.TenseImperative] = "write"

	processed, err := newProcessor(Config{}).ProcessVerb(context.Background(), verb)
	require.NoError(t, err)

	examples := processed.Generated.Examples[domain.DefaultPreverbKey][domain.TenseImperative]
	require.Len(t, examples, 2)
	for _, ex := range examples {
		assert.Contains(t, []domain.Person{domain.Person2Sg, domain.Person2Pl}, ex.Person)
	}
}

func TestProcessVerb_MissingFormFailsCompleteness(t *testing.T) {
	t.Parallel()

	verb := writeVerb()
	delete(verb.Conjugations[domain.TensePresent].Forms, domain.Person2Sg)

	_, err := newProcessor(Config{}).ProcessVerb(context.Background(), verb)
	require.Error(t, err)

	var gapErr *domain.FormGapError
	require.ErrorAs(t, err, &gapErr)
	assert.Equal(t, "cera", gapErr.VerbID)
	assert.Equal(t, domain.Person2Sg, gapErr.Person)
}

func TestProcessVerb_MissingTranslationIsStructural(t *testing.T) {
	t.Parallel()

	verb := writeVerb()
	verb.EnglishTranslations = nil

	_, err := newProcessor(Config{}).ProcessVerb(context.Background(), verb)
	require.Error(t, err)

	var structErr *domain.StructuralError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, "english_translations", structErr.Field)
}

func TestProcessVerb_StructuralValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*domain.Verb)
		field  string
	}{
		{
			name:   "empty id",
			mutate: func(v *domain.Verb) { v.ID = "" },
			field:  "id",
		},
		{
			name:   "no conjugations",
			mutate: func(v *domain.Verb) { v.Conjugations = nil },
			field:  "conjugations",
		},
		{
			name: "default preverb not available",
			mutate: func(v *domain.Verb) {
				v.PreverbConfig.DefaultPreverb = "გა"
			},
			field: "preverb_config.default_preverb",
		},
		{
			name: "fallback references unknown preverb",
			mutate: func(v *domain.Verb) {
				v.PreverbRules.TenseSpecificFallbacks["გა"] = map[domain.Tense]string{
					domain.TensePresent: "მი",
				}
			},
			field: "preverb_rules.tense_specific_fallbacks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verb := goVerb()
			tt.mutate(verb)

			_, err := newProcessor(Config{}).ProcessVerb(context.Background(), verb)
			require.Error(t, err)

			var structErr *domain.StructuralError
			require.ErrorAs(t, err, &structErr)
			assert.Equal(t, tt.field, structErr.Field)
		})
	}
}

// ---------------------------------------------------------------------------
// ProcessAll
// ---------------------------------------------------------------------------

func TestProcessAll(t *testing.T) {
	t.Parallel()

	verbs := map[string]*domain.Verb{
		"svla": goVerb(),
		"cera": writeVerb(),
	}

	out, stats, err := newProcessor(Config{GlossCacheSize: 64, ExampleCacheSize: 64}).ProcessAll(context.Background(), verbs)
	require.NoError(t, err)

	assert.Len(t, out, 2)
	assert.Equal(t, 2, stats.VerbsProcessed)
	// cera: 6 present. svla: 2 preverbs x 2 tenses x 6 persons.
	assert.Equal(t, 6+24, stats.ExamplesGenerated)
}

func TestProcessAll_FailsWithVerbContext(t *testing.T) {
	t.Parallel()

	broken := writeVerb()
	broken.Georgian = ""
	verbs := map[string]*domain.Verb{"cera": broken}

	_, _, err := newProcessor(Config{}).ProcessAll(context.Background(), verbs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"cera"`)
}

// ---------------------------------------------------------------------------
// GeneratePedagogicalExamples
// ---------------------------------------------------------------------------

func TestGeneratePedagogicalExamples_SelectedPreverbs(t *testing.T) {
	t.Parallel()

	res := newProcessor(Config{}).GeneratePedagogicalExamples(
		context.Background(), goVerb(), domain.TensePresent, []string{"წა"})
	require.Nil(t, res.Error)

	assert.Equal(t, "V Act Pres <S> <S:Nom>", res.RawGloss)
	require.Contains(t, res.Examples, "წა")
	assert.NotContains(t, res.Examples, "მი")
	assert.Len(t, res.Examples["წა"], 6)

	require.Len(t, res.FallbackWarnings, 1)
	assert.Contains(t, res.FallbackWarnings[0], "წა")
	assert.Contains(t, res.FallbackWarnings[0], "მი")
}

func TestGeneratePedagogicalExamples_AllPreverbsByDefault(t *testing.T) {
	t.Parallel()

	res := newProcessor(Config{}).GeneratePedagogicalExamples(
		context.Background(), goVerb(), domain.TenseFuture, nil)
	require.Nil(t, res.Error)

	assert.Contains(t, res.Examples, "მი")
	assert.Contains(t, res.Examples, "წა")
	assert.Empty(t, res.FallbackWarnings)
}

func TestGeneratePedagogicalExamples_MissingTense(t *testing.T) {
	t.Parallel()

	res := newProcessor(Config{}).GeneratePedagogicalExamples(
		context.Background(), goVerb(), domain.TenseAorist, nil)

	require.NotNil(t, res.Error)
	assert.Equal(t, ErrorKindStructural, res.Error.Kind)
	assert.NotEmpty(t, res.Error.Guidance)
}

func TestGeneratePedagogicalExamples_GlossFormatError(t *testing.T) {
	t.Parallel()

	verb := writeVerb()
	conj := verb.Conjugations[domain.TensePresent]
	conj.RawGloss = "V Act Pres <S-XX>"
	verb.Conjugations[domain.TensePresent] = conj

	res := newProcessor(Config{}).GeneratePedagogicalExamples(
		context.Background(), verb, domain.TensePresent, nil)

	require.NotNil(t, res.Error)
	assert.Equal(t, ErrorKindGlossFormat, res.Error.Kind)
}

func TestGeneratePedagogicalExamples_UnknownSelection(t *testing.T) {
	t.Parallel()

	res := newProcessor(Config{}).GeneratePedagogicalExamples(
		context.Background(), goVerb(), domain.TensePresent, []string{"გა"})

	require.NotNil(t, res.Error)
	assert.Equal(t, ErrorKindStructural, res.Error.Kind)
}
