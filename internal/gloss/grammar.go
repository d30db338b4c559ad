// Package gloss parses the compact raw-gloss notation describing a verb
// form's voice, tense, and argument/case structure, e.g.
//
//	V Act Pres <S-DO> <S:Nom> <DO:Dat>
//
// The vocabulary is closed: every token is classified by fixed-set
// membership, and anything unrecognized fails loudly rather than being
// guessed at.
package gloss

import (
	"strings"
	"unicode"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

type tokenKind int

const (
	kindVerbMarker tokenKind = iota
	kindVoice
	kindTense
	kindPattern
	kindCaseSpec
	kindAuxiliary
	kindModifier
	kindPreverb
	kindUnknown
)

// auxiliaryMarkers are bracketed tags carried through to the parsed gloss.
// They are syntactically identical to argument patterns but must never be
// treated as one.
var auxiliaryMarkers = map[string]bool{
	"<AuxIntr>":     true,
	"<AuxTrans>":    true,
	"<AuxTransHum>": true,
}

// modifierMarkers are bracketed tags acknowledged and dropped at parse time.
var modifierMarkers = map[string]bool{
	"<Inv>":  true,
	"<Refl>": true,
	"<Caus>": true,
}

// classify assigns a token to its closed vocabulary set. Bracketed tokens
// that are neither case specifications nor auxiliary/modifier markers are
// reported as pattern candidates; the parser enforces the at-most-one rule
// and the closed pattern set on them.
func classify(tok string) tokenKind {
	if tok == domain.VerbMarker {
		return kindVerbMarker
	}
	if _, ok := domain.ParseVoiceTag(tok); ok {
		return kindVoice
	}
	if _, ok := domain.ParseTenseTag(tok); ok {
		return kindTense
	}
	if strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">") {
		if auxiliaryMarkers[tok] {
			return kindAuxiliary
		}
		if modifierMarkers[tok] {
			return kindModifier
		}
		if isCaseSpecShaped(tok) {
			return kindCaseSpec
		}
		return kindPattern
	}
	if isGeorgian(tok) {
		return kindPreverb
	}
	return kindUnknown
}

// isCaseSpecShaped reports whether a bracketed token has the <Role:Case>
// shape. Shape only: role and case validity is checked by the parser so a
// bad spelling fails with a precise error instead of being misread as an
// argument pattern.
func isCaseSpecShaped(tok string) bool {
	inner := strings.TrimSuffix(strings.TrimPrefix(tok, "<"), ">")
	parts := strings.Split(inner, ":")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

// parseCaseSpec splits a <Role:Case> token into its role and case.
func parseCaseSpec(tok string) (domain.Role, domain.Case, bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(tok, "<"), ">")
	parts := strings.Split(inner, ":")
	if len(parts) != 2 {
		return "", "", false
	}
	role, ok := domain.ParseRoleTag(parts[0])
	if !ok {
		return "", "", false
	}
	c, ok := domain.ParseCaseTag(parts[1])
	if !ok {
		return role, "", false
	}
	return role, c, true
}

// isGeorgian reports whether every rune of the token is in the Georgian
// script. Such tokens name the gloss's preverb.
func isGeorgian(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.Is(unicode.Georgian, r) && r != '-' {
			return false
		}
	}
	return true
}
