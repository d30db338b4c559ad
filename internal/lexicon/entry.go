// Package lexicon defines the noun/adjective lookup contract the core
// depends on: a key→case-form mapping with singular/plural variants and an
// English base form. Storage adapters (JSON files, Postgres) implement the
// Store interface.
package lexicon

import (
	"encoding/json"
	"fmt"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// CaseSet holds one inflected form per grammatical case.
type CaseSet struct {
	Nom  string `json:"nom"`
	Erg  string `json:"erg"`
	Dat  string `json:"dat"`
	Gen  string `json:"gen"`
	Inst string `json:"inst"`
	Adv  string `json:"adv"`
}

// Get returns the form for a case; ok is false when the form is absent.
func (cs CaseSet) Get(c domain.Case) (string, bool) {
	var form string
	switch c {
	case domain.CaseNom:
		form = cs.Nom
	case domain.CaseErg:
		form = cs.Erg
	case domain.CaseDat:
		form = cs.Dat
	case domain.CaseGen:
		form = cs.Gen
	case domain.CaseInst:
		form = cs.Inst
	case domain.CaseAdv:
		form = cs.Adv
	}
	return form, form != ""
}

// EnglishText is the English base form of a lexicon entry. The dataset
// writes it either as a bare string (used for both numbers) or as a
// {singular, plural} object.
type EnglishText struct {
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// Get returns the text for a number, falling back to the singular when no
// separate plural is authored.
func (e EnglishText) Get(n domain.Number) (string, bool) {
	if n == domain.NumberPlural && e.Plural != "" {
		return e.Plural, true
	}
	return e.Singular, e.Singular != ""
}

func (e *EnglishText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Singular = s
		e.Plural = ""
		return nil
	}

	var obj struct {
		Singular string `json:"singular"`
		Plural   string `json:"plural"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("english field must be a string or {singular, plural}: %w", err)
	}
	e.Singular = obj.Singular
	e.Plural = obj.Plural
	return nil
}

// Entry is one noun or adjective record with all its inflected forms.
type Entry struct {
	Cases   CaseSet     `json:"cases"`
	Plural  CaseSet     `json:"plural"`
	English EnglishText `json:"english"`
}

// Form returns the inflected form for a case and number.
func (e Entry) Form(c domain.Case, n domain.Number) (string, bool) {
	if n == domain.NumberPlural {
		return e.Plural.Get(c)
	}
	return e.Cases.Get(c)
}
