package examples

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

func TestThirdSingular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verb string
		want string
	}{
		{"carry", "carries"},
		{"fly", "flies"},
		{"play", "plays"}, // vowel before y: no -ies
		{"go", "goes"},
		{"watch", "watches"},
		{"wash", "washes"},
		{"pass", "passes"},
		{"fix", "fixes"},
		{"buzz", "buzzes"},
		{"write", "writes"},
		{"am", "is"},
	}
	for _, tt := range tests {
		t.Run(tt.verb, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, thirdSingular(tt.verb))
		})
	}
}

func TestApplyAgreement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		translation string
		tense       domain.Tense
		person      domain.Person
		want        string
	}{
		{"present 3sg inflects head verb", "carry", domain.TensePresent, domain.Person3Sg, "carries"},
		{"present 3sg multiword inflects first word only", "carry out", domain.TensePresent, domain.Person3Sg, "carries out"},
		{"present 3sg am", "am going", domain.TensePresent, domain.Person3Sg, "is going"},
		{"present 3pl am to are", "am going", domain.TensePresent, domain.Person3Pl, "are going"},
		{"present 1sg untouched", "carry", domain.TensePresent, domain.Person1Sg, "carry"},
		{"imperfect 3pl was to were", "was writing", domain.TenseImperfect, domain.Person3Pl, "were writing"},
		{"aorist 3pl was to were", "was there", domain.TenseAorist, domain.Person3Pl, "were there"},
		{"aorist 3sg untouched", "wrote", domain.TenseAorist, domain.Person3Sg, "wrote"},
		{"whole word boundary protects familiar", "was familiar", domain.TenseImperfect, domain.Person3Pl, "were familiar"},
		{"am inside word untouched", "familiarize", domain.TensePresent, domain.Person3Pl, "familiarize"},
		{"future 3pl untouched", "will go", domain.TenseFuture, domain.Person3Pl, "will go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, applyAgreement(tt.translation, tt.tense, tt.person))
		})
	}
}

func TestEnsureShould(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "should write", ensureShould("write"))
	assert.Equal(t, "should write", ensureShould("should write"))
	// "shoulder" does not lexically contain the word "should".
	assert.Equal(t, "should shoulder the load", ensureShould("shoulder the load"))
}
