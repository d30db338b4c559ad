package lexicon

import (
	"context"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// Store is the lookup collaborator the core depends on. Implementations
// return *domain.CaseFormMissingError when a key is absent from every table
// or the requested case is absent for a key.
type Store interface {
	CaseForm(ctx context.Context, key string, c domain.Case, n domain.Number) (string, error)
	English(ctx context.Context, key string, n domain.Number) (string, error)
}

// Table names used by adapters, in lookup order.
const (
	TableSubjects        = "subjects"
	TableDirectObjects   = "direct_objects"
	TableIndirectObjects = "indirect_objects"
	TableAdjectives      = "adjectives"
)

// TableNames returns the four lexicon tables in lookup order.
func TableNames() []string {
	return []string{TableSubjects, TableDirectObjects, TableIndirectObjects, TableAdjectives}
}

type table struct {
	name    string
	entries map[string]Entry
}

// Tables is the in-memory Store over the four lexicon documents. A key is
// searched across all tables in declaration order, so a noun usable as
// either subject or object needs only one entry.
type Tables struct {
	tables []table
}

var _ Store = (*Tables)(nil)

// NewTables builds an in-memory store. Keys are normalized on insert and
// on lookup.
func NewTables(subjects, directObjects, indirectObjects, adjectives map[string]Entry) *Tables {
	mk := func(name string, entries map[string]Entry) table {
		normalized := make(map[string]Entry, len(entries))
		for k, e := range entries {
			normalized[domain.NormalizeKey(k)] = e
		}
		return table{name: name, entries: normalized}
	}
	return &Tables{tables: []table{
		mk(TableSubjects, subjects),
		mk(TableDirectObjects, directObjects),
		mk(TableIndirectObjects, indirectObjects),
		mk(TableAdjectives, adjectives),
	}}
}

func (t *Tables) find(key string) (Entry, bool) {
	k := domain.NormalizeKey(key)
	for _, tbl := range t.tables {
		if e, ok := tbl.entries[k]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// CaseForm implements Store.
func (t *Tables) CaseForm(_ context.Context, key string, c domain.Case, n domain.Number) (string, error) {
	e, ok := t.find(key)
	if !ok {
		return "", &domain.CaseFormMissingError{Key: key}
	}
	form, ok := e.Form(c, n)
	if !ok {
		return "", &domain.CaseFormMissingError{Key: key, Case: c, Number: n}
	}
	return form, nil
}

// English implements Store.
func (t *Tables) English(_ context.Context, key string, n domain.Number) (string, error) {
	e, ok := t.find(key)
	if !ok {
		return "", &domain.CaseFormMissingError{Key: key}
	}
	text, ok := e.English.Get(n)
	if !ok {
		return "", &domain.CaseFormMissingError{Key: key, Number: n}
	}
	return text, nil
}
