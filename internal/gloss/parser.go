package gloss

import (
	"strings"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// Parse validates a raw gloss and returns its structured form.
//
// An empty or whitespace-only gloss, or one consisting solely of the verb
// marker, parses to the default active/present/<S>/Nom structure: many
// basic verbs have minimal glosses and their examples must still be
// producible. Everything else that deviates from the grammar fails with a
// *domain.GlossFormatError.
func Parse(raw string) (*domain.ParsedGloss, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return domain.DefaultParsedGloss(), nil
	}
	if fields[0] != domain.VerbMarker {
		return nil, &domain.GlossFormatError{
			Gloss:  raw,
			Token:  fields[0],
			Reason: "must start with the verb marker " + domain.VerbMarker,
		}
	}
	if len(fields) == 1 {
		return domain.DefaultParsedGloss(), nil
	}

	var (
		voice      domain.Voice
		tense      domain.Tense
		preverb    string
		pattern    domain.ArgumentPattern
		patternTok string
		aux        []string
		cases      = make(map[domain.Role]domain.Case)
	)

	for _, tok := range fields[1:] {
		switch classify(tok) {
		case kindVerbMarker:
			return nil, &domain.GlossFormatError{Gloss: raw, Token: tok, Reason: "duplicate verb marker"}

		case kindVoice:
			if voice != "" {
				return nil, &domain.GlossFormatError{Gloss: raw, Token: tok, Reason: "duplicate voice token"}
			}
			voice, _ = domain.ParseVoiceTag(tok)

		case kindTense:
			if tense != "" {
				return nil, &domain.GlossFormatError{Gloss: raw, Token: tok, Reason: "duplicate tense token"}
			}
			tense, _ = domain.ParseTenseTag(tok)

		case kindPreverb:
			if preverb != "" {
				return nil, &domain.GlossFormatError{Gloss: raw, Token: tok, Reason: "duplicate preverb token"}
			}
			preverb = tok

		case kindAuxiliary:
			aux = append(aux, tok)

		case kindModifier:
			// Acknowledged and dropped.

		case kindCaseSpec:
			role, c, ok := parseCaseSpec(tok)
			if !ok {
				return nil, &domain.GlossFormatError{Gloss: raw, Token: tok, Reason: "unsupported role or case in case specification"}
			}
			if _, dup := cases[role]; dup {
				return nil, &domain.GlossFormatError{Gloss: raw, Token: tok, Reason: "duplicate case specification for role " + role.Tag()}
			}
			cases[role] = c

		case kindPattern:
			if patternTok != "" {
				return nil, &domain.GlossFormatError{Gloss: raw, Token: tok, Reason: "more than one argument-pattern token"}
			}
			patternTok = tok
			pattern = domain.ArgumentPattern(tok)
			if !pattern.IsValid() {
				return nil, &domain.GlossFormatError{Gloss: raw, Token: tok, Reason: "unsupported argument pattern"}
			}

		default:
			return nil, &domain.GlossFormatError{Gloss: raw, Token: tok, Reason: "unrecognized token"}
		}
	}

	if voice == "" {
		return nil, &domain.GlossFormatError{Gloss: raw, Reason: "missing voice token"}
	}
	if tense == "" {
		return nil, &domain.GlossFormatError{Gloss: raw, Reason: "missing tense token"}
	}

	// A gloss with voice and tense but no argument structure at all keeps
	// the minimal-gloss default: a nominative subject.
	if patternTok == "" && len(cases) == 0 {
		pattern = domain.PatternS
		cases[domain.RoleSubject] = domain.CaseNom
	} else if patternTok == "" {
		return nil, &domain.GlossFormatError{Gloss: raw, Reason: "case specifications given without an argument pattern"}
	}

	args := make(map[domain.Role]domain.ArgumentSlot, len(cases))
	for _, role := range pattern.Roles() {
		c, ok := cases[role]
		if !ok {
			return nil, &domain.GlossFormatError{
				Gloss:  raw,
				Reason: "pattern " + string(pattern) + " declares role " + role.Tag() + " but no case specification names it",
			}
		}
		args[role] = domain.ArgumentSlot{Role: role, Case: c}
	}
	for role := range cases {
		if !pattern.Includes(role) {
			return nil, &domain.GlossFormatError{
				Gloss:  raw,
				Reason: "case specification names role " + role.Tag() + " absent from pattern " + string(pattern),
			}
		}
	}

	return &domain.ParsedGloss{
		Voice:     voice,
		Tense:     tense,
		Preverb:   preverb,
		Pattern:   pattern,
		Arguments: args,
		Auxiliary: aux,
	}, nil
}
