package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/gridpass/authcore/storage/postgres"
)

func TestConnectValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty connection string", func(t *testing.T) {
		t.Parallel()
		_, err := postgres.Connect(ctx, postgres.Config{})
		require.ErrorIs(t, err, postgres.ErrEmptyConnectionString)
	})

	t.Run("malformed connection string", func(t *testing.T) {
		t.Parallel()
		_, err := postgres.Connect(ctx, postgres.Config{ConnectionString: "not a url"})
		require.ErrorIs(t, err, postgres.ErrFailedToParseConfig)
	})
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		require.True(t, postgres.IsNotFound(pgx.ErrNoRows))
		require.True(t, postgres.IsNotFound(errors.Join(errors.New("wrapped"), pgx.ErrNoRows)))
		require.False(t, postgres.IsNotFound(errors.New("other")))
		require.False(t, postgres.IsNotFound(nil))
	})

	t.Run("duplicate key", func(t *testing.T) {
		t.Parallel()
		require.True(t, postgres.IsDuplicateKey(&pgconn.PgError{Code: "23505"}))
		require.False(t, postgres.IsDuplicateKey(&pgconn.PgError{Code: "23503"}))
		require.False(t, postgres.IsDuplicateKey(errors.New("other")))
	})

	t.Run("foreign key violation", func(t *testing.T) {
		t.Parallel()
		require.True(t, postgres.IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
		require.False(t, postgres.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	})
}

func TestTxContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var tx pgx.Tx = nopTx{}
		ctx := postgres.WithTx(context.Background(), tx)

		got, ok := postgres.TxFromContext(ctx)
		require.True(t, ok)
		require.Equal(t, tx, got)
	})

	t.Run("nil tx leaves context unchanged", func(t *testing.T) {
		t.Parallel()
		ctx := postgres.WithTx(context.Background(), nil)

		_, ok := postgres.TxFromContext(ctx)
		require.False(t, ok)
	})
}

// nopTx is a minimal pgx.Tx stand-in for context round-trip tests.
type nopTx struct{ pgx.Tx }
