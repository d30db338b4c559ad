package examples

import (
	"regexp"
	"strings"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// pronouns are the explicit English subject pronouns. Georgian omits the
// pronoun because person is encoded in the verb, so these appear on the
// English side only.
var pronouns = map[domain.Person]string{
	domain.Person1Sg: "I",
	domain.Person2Sg: "you",
	domain.Person3Sg: "he",
	domain.Person1Pl: "we",
	domain.Person2Pl: "you all",
	domain.Person3Pl: "they",
}

// Whole-word replacements. Boundary matching keeps unrelated substrings
// intact ("familiar" must survive the "am" rule).
var (
	reAm     = regexp.MustCompile(`\bam\b`)
	reWas    = regexp.MustCompile(`\bwas\b`)
	reShould = regexp.MustCompile(`\bshould\b`)
)

// OptativeParticle is prepended to Georgian optative forms.
const OptativeParticle = "უნდა"

// ensureShould prepends "should" to an English translation unless it is
// already lexically present.
func ensureShould(translation string) string {
	if reShould.MatchString(translation) {
		return translation
	}
	return "should " + translation
}

// applyAgreement inflects an English base translation for the tense and
// person: present 3sg takes third-singular morphology on the head verb,
// present 3pl turns "am" into "are", and imperfect/aorist 3pl turn "was"
// into "were".
func applyAgreement(translation string, tense domain.Tense, person domain.Person) string {
	switch {
	case tense == domain.TensePresent && person == domain.Person3Sg:
		words := strings.Fields(translation)
		if len(words) == 0 {
			return translation
		}
		words[0] = thirdSingular(words[0])
		return strings.Join(words, " ")

	case tense == domain.TensePresent && person == domain.Person3Pl:
		return reAm.ReplaceAllString(translation, "are")

	case (tense == domain.TenseImperfect || tense == domain.TenseAorist) && person == domain.Person3Pl:
		return reWas.ReplaceAllString(translation, "were")
	}
	return translation
}

// thirdSingular applies standard English -s orthography to one verb:
// "am"→"is", consonant+y→"-ies", sibilant endings (o/s/x/z/ch/sh)→"-es",
// everything else→"-s".
func thirdSingular(verb string) string {
	if verb == "am" {
		return "is"
	}
	if len(verb) >= 2 && strings.HasSuffix(verb, "y") && !isVowel(verb[len(verb)-2]) {
		return verb[:len(verb)-1] + "ies"
	}
	for _, suffix := range []string{"ch", "sh", "o", "s", "x", "z"} {
		if strings.HasSuffix(verb, suffix) {
			return verb + "es"
		}
	}
	return verb + "s"
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
