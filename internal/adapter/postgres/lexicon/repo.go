// Package lexicon implements the lexicon Store backed by PostgreSQL. All
// four documents live in one lexicon_entries table with a table_name
// discriminator; lookups search by key across tables in the same
// precedence order as the in-memory store.
package lexicon

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kartuli-app/kartuli-backend/internal/adapter/postgres"
	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/lexicon"
)

// Repo provides lexicon persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

var _ lexicon.Store = (*Repo)(nil)

// New creates a new lexicon repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// tablePrecedence orders rows so that a key present in several documents
// resolves to the same document the in-memory store would pick.
const tablePrecedence = `array_position(ARRAY['subjects', 'direct_objects', 'indirect_objects', 'adjectives'], table_name)`

// Get returns the entry for a key, searching all documents in precedence
// order. Returns *domain.CaseFormMissingError when the key is absent.
func (r *Repo) Get(ctx context.Context, key string) (lexicon.Entry, error) {
	query, args, err := r.sb.
		Select("cases", "plural_cases", "english_singular", "english_plural").
		From("lexicon_entries").
		Where(sq.Eq{"key": domain.NormalizeKey(key)}).
		OrderBy(tablePrecedence).
		Limit(1).
		ToSql()
	if err != nil {
		return lexicon.Entry{}, fmt.Errorf("build lexicon query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var e lexicon.Entry
	row := q.QueryRow(ctx, query, args...)
	if err := row.Scan(&e.Cases, &e.Plural, &e.English.Singular, &e.English.Plural); err != nil {
		return lexicon.Entry{}, postgres.MapError(err, "lexicon entry", key)
	}
	return e, nil
}

// CaseForm implements lexicon.Store.
func (r *Repo) CaseForm(ctx context.Context, key string, c domain.Case, n domain.Number) (string, error) {
	e, err := r.Get(ctx, key)
	if err != nil {
		return "", missingOnNotFound(err, key)
	}
	form, ok := e.Form(c, n)
	if !ok {
		return "", &domain.CaseFormMissingError{Key: key, Case: c, Number: n}
	}
	return form, nil
}

// English implements lexicon.Store.
func (r *Repo) English(ctx context.Context, key string, n domain.Number) (string, error) {
	e, err := r.Get(ctx, key)
	if err != nil {
		return "", missingOnNotFound(err, key)
	}
	text, ok := e.English.Get(n)
	if !ok {
		return "", &domain.CaseFormMissingError{Key: key, Number: n}
	}
	return text, nil
}

// Count returns the number of rows in one document.
func (r *Repo) Count(ctx context.Context, tableName string) (int, error) {
	query, args, err := r.sb.
		Select("count(*)").
		From("lexicon_entries").
		Where(sq.Eq{"table_name": tableName}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build lexicon count query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "lexicon table", tableName)
	}
	return count, nil
}

// missingOnNotFound converts a not-found row into the domain's missing-key
// error so callers see the same failure shape as the in-memory store.
func missingOnNotFound(err error, key string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.CaseFormMissingError{Key: key}
	}
	return err
}
