package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		want    error
		wantNil bool
	}{
		{
			name:    "nil error",
			err:     nil,
			wantNil: true,
		},
		{
			name: "no rows maps to not found",
			err:  pgx.ErrNoRows,
			want: domain.ErrNotFound,
		},
		{
			name: "unique violation maps to already exists",
			err:  &pgconn.PgError{Code: "23505"},
			want: domain.ErrAlreadyExists,
		},
		{
			name: "foreign key violation maps to not found",
			err:  &pgconn.PgError{Code: "23503"},
			want: domain.ErrNotFound,
		},
		{
			name: "check violation maps to validation",
			err:  &pgconn.PgError{Code: "23514"},
			want: domain.ErrValidation,
		},
		{
			name: "context deadline passes through",
			err:  context.DeadlineExceeded,
			want: context.DeadlineExceeded,
		},
		{
			name: "context canceled passes through",
			err:  context.Canceled,
			want: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.err, "lexicon entry", "boy")
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), `"boy"`)
		})
	}
}

func TestMapError_UnknownErrorKeepsContext(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	got := MapError(cause, "lexicon entry", "boy")

	require.Error(t, got)
	assert.ErrorIs(t, got, cause)
	assert.NotErrorIs(t, got, domain.ErrNotFound)
}
