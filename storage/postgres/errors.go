package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrEmptyConnectionString means Config.ConnectionString was not set.
	ErrEmptyConnectionString = errors.New("empty postgres connection string")

	// ErrFailedToParseConfig means the connection string was rejected by pgx.
	ErrFailedToParseConfig = errors.New("failed to parse postgres config")

	// ErrFailedToConnect means the pool could not be verified within the
	// configured retry budget.
	ErrFailedToConnect = errors.New("failed to connect to postgres")

	// ErrFailedToApplyMigrations wraps goose failures.
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
)

// IsNotFound reports whether err is a no-rows result.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsForeignKeyViolation reports whether err is a referential integrity
// violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
