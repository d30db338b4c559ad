package lexicon

import (
	"context"
	"strings"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// NoAdjective is the sentinel adjective key meaning "no adjective". It is
// checked before any lookup so it can never surface as a lookup miss.
const NoAdjective = "none"

// HasAdjective reports whether an adjective key names a real adjective.
func HasAdjective(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && !strings.EqualFold(key, NoAdjective)
}

// Resolver retrieves inflected noun/adjective text and English base forms
// from the lookup collaborator.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// CaseForm returns the inflected noun form for a key, case, and number.
func (r *Resolver) CaseForm(ctx context.Context, key string, c domain.Case, n domain.Number) (string, error) {
	return r.store.CaseForm(ctx, key, c, n)
}

// AdjectiveForm returns the inflected adjective form for a key and case.
// The NoAdjective sentinel (and an empty key) short-circuits to an empty
// string with no lookup attempted. Adjectives agree in case, not number.
func (r *Resolver) AdjectiveForm(ctx context.Context, key string, c domain.Case) (string, error) {
	if !HasAdjective(key) {
		return "", nil
	}
	return r.store.CaseForm(ctx, key, c, domain.NumberSingular)
}

// English returns the English base text for a key and number.
func (r *Resolver) English(ctx context.Context, key string, n domain.Number) (string, error) {
	return r.store.English(ctx, key, n)
}

// EnglishAdjective mirrors AdjectiveForm on the English side, including the
// NoAdjective short-circuit.
func (r *Resolver) EnglishAdjective(ctx context.Context, key string) (string, error) {
	if !HasAdjective(key) {
		return "", nil
	}
	return r.store.English(ctx, key, domain.NumberSingular)
}
