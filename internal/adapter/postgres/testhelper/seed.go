package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kartuli-app/kartuli-backend/internal/lexicon"
)

// SeedLexiconEntry inserts one lexicon row and returns its key. Keys get a
// unique suffix so parallel tests never collide on (table_name, key).
func SeedLexiconEntry(t *testing.T, pool *pgxpool.Pool, tableName string, entry lexicon.Entry) string {
	t.Helper()

	key := "test-" + uuid.New().String()[:8]
	SeedLexiconEntryWithKey(t, pool, tableName, key, entry)
	return key
}

// SeedLexiconEntryWithKey inserts one lexicon row under an explicit key.
func SeedLexiconEntryWithKey(t *testing.T, pool *pgxpool.Pool, tableName, key string, entry lexicon.Entry) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lexicon_entries (id, table_name, key, cases, plural_cases, english_singular, english_plural)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New(), tableName, key, entry.Cases, entry.Plural, entry.English.Singular, entry.English.Plural,
	)
	if err != nil {
		t.Fatalf("seed lexicon entry %q: %v", key, err)
	}
}
