package preverb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

func formsFixture() map[string]map[domain.Tense]map[domain.Person]string {
	return map[string]map[domain.Tense]map[domain.Person]string{
		"მი": {
			domain.TensePresent: {
				domain.Person1Sg: "მივდივარ",
				domain.Person3Sg: "მიდის",
			},
			domain.TenseFuture: {
				domain.Person1Sg: "მივალ",
				domain.Person3Sg: "მივა",
			},
		},
		"წა": {
			domain.TensePresent: {
				domain.Person1Sg: "წავდივარ",
				domain.Person3Sg: "წადის",
			},
			domain.TenseFuture: {
				domain.Person1Sg: "წავალ",
				domain.Person3Sg: "წავა",
			},
		},
	}
}

func rulesFixture() domain.PreverbRules {
	return domain.PreverbRules{
		TenseSpecificFallbacks: map[string]map[domain.Tense]string{
			"წა": {domain.TensePresent: "მი"},
		},
	}
}

func TestResolveFallbacks_FormsReplacedByteIdentical(t *testing.T) {
	t.Parallel()

	forms := formsFixture()
	_, notices := ResolveFallbacks(forms, rulesFixture(), nil)

	assert.Equal(t, forms["მი"][domain.TensePresent], forms["წა"][domain.TensePresent])
	// Other tenses keep their own derivation.
	assert.Equal(t, "წავალ", forms["წა"][domain.TenseFuture][domain.Person1Sg])

	require.Len(t, notices, 1)
	assert.Equal(t, domain.FallbackNotice{
		Preverb:  "წა",
		Fallback: "მი",
		Tense:    domain.TensePresent,
	}, notices[0])
}

func TestResolveFallbacks_ReplacementIsACopy(t *testing.T) {
	t.Parallel()

	forms := formsFixture()
	ResolveFallbacks(forms, rulesFixture(), nil)

	forms["მი"][domain.TensePresent][domain.Person1Sg] = "changed"
	assert.Equal(t, "მივდივარ", forms["წა"][domain.TensePresent][domain.Person1Sg])
}

func TestResolveFallbacks_TranslationPropagated(t *testing.T) {
	t.Parallel()

	translations := map[string]map[domain.Tense]string{
		"მი": {domain.TensePresent: "go (there)", domain.TenseFuture: "will go"},
		"წა": {domain.TenseFuture: "will go away"},
	}

	forms := formsFixture()
	outTr, notices := ResolveFallbacks(forms, rulesFixture(), translations)

	assert.Equal(t, "go (there)", outTr["წა"][domain.TensePresent])
	assert.Equal(t, "will go away", outTr["წა"][domain.TenseFuture])
	require.Len(t, notices, 1)
	assert.True(t, notices[0].TranslationCopied)

	// Input translations stay untouched.
	_, ok := translations["წა"][domain.TensePresent]
	assert.False(t, ok)
}

func TestResolveFallbacks_MissingSourceTranslationSkippedWithoutError(t *testing.T) {
	t.Parallel()

	translations := map[string]map[domain.Tense]string{
		"მი": {domain.TenseFuture: "will go"},
	}

	forms := formsFixture()
	outTr, notices := ResolveFallbacks(forms, rulesFixture(), translations)

	_, ok := outTr["წა"][domain.TensePresent]
	assert.False(t, ok, "no source translation to copy")
	require.Len(t, notices, 1)
	assert.False(t, notices[0].TranslationCopied)
}

func TestResolveFallbacks_HyphenSpelledFormKeys(t *testing.T) {
	t.Parallel()

	// Forms keyed with the dataset's hyphen spelling, rule keyed bare.
	forms := map[string]map[domain.Tense]map[domain.Person]string{
		"მი-": formsFixture()["მი"],
		"წა-": formsFixture()["წა"],
	}

	_, notices := ResolveFallbacks(forms, rulesFixture(), nil)

	assert.Equal(t, forms["მი-"][domain.TensePresent], forms["წა-"][domain.TensePresent])
	assert.Equal(t, "მივდივარ", forms["წა-"][domain.TensePresent][domain.Person1Sg])

	require.Len(t, notices, 1)
	assert.Equal(t, domain.FallbackNotice{
		Preverb:  "წა-",
		Fallback: "მი-",
		Tense:    domain.TensePresent,
	}, notices[0])
}

func TestResolveFallbacks_HyphenSpelledTranslationKeys(t *testing.T) {
	t.Parallel()

	translations := map[string]map[domain.Tense]string{
		"მი-": {domain.TensePresent: "go (there)"},
	}

	forms := formsFixture()
	outTr, notices := ResolveFallbacks(forms, rulesFixture(), translations)

	require.Len(t, notices, 1)
	assert.True(t, notices[0].TranslationCopied)
	assert.Equal(t, "go (there)", outTr["წა"][domain.TensePresent])
}

func TestResolveFallbacks_ChainedRulesConverge(t *testing.T) {
	t.Parallel()

	forms := formsFixture()
	forms["ამო"] = map[domain.Tense]map[domain.Person]string{
		domain.TensePresent: {
			domain.Person1Sg: "ამოვდივარ",
			domain.Person3Sg: "ამოდის",
		},
	}
	rules := domain.PreverbRules{
		TenseSpecificFallbacks: map[string]map[domain.Tense]string{
			"ამო": {domain.TensePresent: "მი"},
			"მი":  {domain.TensePresent: "წა"},
		},
	}

	_, notices := ResolveFallbacks(forms, rules, nil)

	// Every preverb in the chain ends on the terminal source's forms.
	assert.Equal(t, forms["წა"][domain.TensePresent], forms["მი"][domain.TensePresent])
	assert.Equal(t, forms["მი"][domain.TensePresent], forms["ამო"][domain.TensePresent])
	assert.Equal(t, "წავდივარ", forms["ამო"][domain.TensePresent][domain.Person1Sg])

	require.Len(t, notices, 2)
	assert.Equal(t, "ამო", notices[0].Preverb)
	assert.Equal(t, "წა", notices[0].Fallback, "chain reported against its terminal source")
	assert.Equal(t, "მი", notices[1].Preverb)
	assert.Equal(t, "წა", notices[1].Fallback)
}

func TestResolveFallbacks_CycleStopsAtLastBeforeRepeat(t *testing.T) {
	t.Parallel()

	forms := formsFixture()
	rules := domain.PreverbRules{
		TenseSpecificFallbacks: map[string]map[domain.Tense]string{
			"მი": {domain.TensePresent: "წა"},
			"წა": {domain.TensePresent: "მი"},
		},
	}

	// Must terminate; each side resolves against the other.
	_, notices := ResolveFallbacks(forms, rules, nil)
	assert.Len(t, notices, 2)
}

func TestResolveFallbacks_SkipsWhenEitherSideLacksForms(t *testing.T) {
	t.Parallel()

	forms := formsFixture()
	delete(forms["მი"], domain.TensePresent)

	_, notices := ResolveFallbacks(forms, rulesFixture(), nil)
	assert.Empty(t, notices)
	assert.Equal(t, "წავდივარ", forms["წა"][domain.TensePresent][domain.Person1Sg])
}
