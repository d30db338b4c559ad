package domain

import "strings"

// VerbMarker is the leading token of every raw gloss.
const VerbMarker = "V"

// ArgumentSlot assigns a grammatical case to one declared role.
type ArgumentSlot struct {
	Role Role `json:"type"`
	Case Case `json:"case"`
}

// ParsedGloss is the structured form of a raw gloss. It is derived
// deterministically by the parser and never mutated afterwards.
type ParsedGloss struct {
	Voice   Voice  `json:"voice"`
	Tense   Tense  `json:"tense"`
	Preverb string `json:"preverb,omitempty"`

	Pattern   ArgumentPattern       `json:"argument_pattern"`
	Arguments map[Role]ArgumentSlot `json:"arguments"`

	// Auxiliary markers are preserved in encounter order; modifier markers
	// are dropped at parse time.
	Auxiliary []string `json:"auxiliary,omitempty"`
}

// DefaultParsedGloss is the structure produced for empty or verb-only
// glosses: an active present intransitive with a nominative subject.
func DefaultParsedGloss() *ParsedGloss {
	return &ParsedGloss{
		Voice:   VoiceActive,
		Tense:   TensePresent,
		Pattern: PatternS,
		Arguments: map[Role]ArgumentSlot{
			RoleSubject: {Role: RoleSubject, Case: CaseNom},
		},
	}
}

// CanonicalString renders the gloss back into canonical tag order:
// verb marker, voice, tense, preverb, auxiliary markers, argument pattern,
// then case specifications in S, DO, IO order. Parsing the result yields an
// equal ParsedGloss.
func (g *ParsedGloss) CanonicalString() string {
	parts := []string{VerbMarker, g.Voice.Tag(), g.Tense.Tag()}
	if g.Preverb != "" {
		parts = append(parts, g.Preverb)
	}
	parts = append(parts, g.Auxiliary...)
	parts = append(parts, string(g.Pattern))
	for _, role := range AllRoles() {
		if slot, ok := g.Arguments[role]; ok {
			parts = append(parts, "<"+role.Tag()+":"+slot.Case.Tag()+">")
		}
	}
	return strings.Join(parts, " ")
}

// Equal reports structural equality of two parsed glosses.
func (g *ParsedGloss) Equal(other *ParsedGloss) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Voice != other.Voice || g.Tense != other.Tense ||
		g.Preverb != other.Preverb || g.Pattern != other.Pattern {
		return false
	}
	if len(g.Auxiliary) != len(other.Auxiliary) {
		return false
	}
	for i, a := range g.Auxiliary {
		if other.Auxiliary[i] != a {
			return false
		}
	}
	if len(g.Arguments) != len(other.Arguments) {
		return false
	}
	for role, slot := range g.Arguments {
		if other.Arguments[role] != slot {
			return false
		}
	}
	return true
}
