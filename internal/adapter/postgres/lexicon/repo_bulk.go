package lexicon

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/kartuli-app/kartuli-backend/internal/adapter/postgres"
	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/lexicon"
)

// BulkUpsert inserts or replaces all entries of one document using
// pgx.Batch. Keys are normalized on insert so lookups match the in-memory
// store. Returns the number of affected rows.
func (r *Repo) BulkUpsert(ctx context.Context, tableName string, entries map[string]lexicon.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for key, e := range entries {
		batch.Queue(
			`INSERT INTO lexicon_entries (id, table_name, key, cases, plural_cases, english_singular, english_plural)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (table_name, key) DO UPDATE SET
			     cases = EXCLUDED.cases,
			     plural_cases = EXCLUDED.plural_cases,
			     english_singular = EXCLUDED.english_singular,
			     english_plural = EXCLUDED.english_plural,
			     updated_at = now()`,
			uuid.New(), tableName, domain.NormalizeKey(key),
			e.Cases, e.Plural, e.English.Singular, e.English.Plural,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var affected int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return affected, fmt.Errorf("batch exec: %w", err)
		}
		affected += int(tag.RowsAffected())
	}

	return affected, nil
}
