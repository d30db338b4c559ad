package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
)

// GlossFormatError reports a malformed raw-gloss string. Token is the
// offending token when one can be singled out.
type GlossFormatError struct {
	Gloss  string
	Token  string
	Reason string
}

func (e *GlossFormatError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("raw gloss %q: token %q: %s", e.Gloss, e.Token, e.Reason)
	}
	return fmt.Sprintf("raw gloss %q: %s", e.Gloss, e.Reason)
}

func (e *GlossFormatError) Unwrap() error { return ErrValidation }

// CaseFormMissingError reports a noun/adjective key or case absent from
// every known lexicon table.
type CaseFormMissingError struct {
	Key    string
	Case   Case
	Number Number
}

func (e *CaseFormMissingError) Error() string {
	if e.Case != "" {
		return fmt.Sprintf("lexicon key %q: no %s form for case %s", e.Key, e.Number, e.Case)
	}
	if e.Number != "" {
		return fmt.Sprintf("lexicon key %q: no %s english text", e.Key, e.Number)
	}
	return fmt.Sprintf("lexicon key %q: not present in any lookup table", e.Key)
}

func (e *CaseFormMissingError) Unwrap() error { return ErrNotFound }

// ArgumentResolutionError reports missing syntax configuration in the verb
// dataset for a specific role/person. Hint carries remediation guidance for
// the dataset author.
type ArgumentResolutionError struct {
	VerbID string
	Role   Role
	Person Person
	Reason string
	Hint   string
}

func (e *ArgumentResolutionError) Error() string {
	return fmt.Sprintf("verb %q: %s/%s: %s", e.VerbID, e.Role, e.Person, e.Reason)
}

func (e *ArgumentResolutionError) Unwrap() error { return ErrValidation }

// FormGapError reports a required person missing a verb form after preverb
// derivation and fallback resolution. It fails the whole build: a silently
// missing form would be worse than a build break.
type FormGapError struct {
	VerbID  string
	Preverb string
	Tense   Tense
	Person  Person
}

func (e *FormGapError) Error() string {
	return fmt.Sprintf("verb %q: preverb %q: no %s form for %s after derivation",
		e.VerbID, e.Preverb, e.Tense, e.Person)
}

func (e *FormGapError) Unwrap() error { return ErrValidation }

// StructuralError reports a verb record missing required dataset fields.
// It is raised before any example generation is attempted for that verb.
type StructuralError struct {
	VerbID string
	Field  string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("verb %q: %s: %s", e.VerbID, e.Field, e.Reason)
}

func (e *StructuralError) Unwrap() error { return ErrValidation }
