// Package database wraps the pgx pool with the query surface the handlers
// use. The rest of the code treats this as an opaque document store.
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forkfeed/forkfeed/internal/sql"
)

const uniqueViolationCode = "23505"

var (
	ErrSlugConflict  = errors.New("slug already in use")
	ErrEmailConflict = errors.New("email already in use")
)

type Database struct {
	pool *pgxpool.Pool
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{
		pool: pool,
	}
}

// EnsureSchema applies the embedded schema when it is not detected.
func (db *Database) EnsureSchema(ctx context.Context) error {
	exists, err := db.checkRecipesTableExists(ctx)
	if err != nil {
		return fmt.Errorf("ensuring schema exists: %w", err)
	}

	if exists {
		return nil
	}

	if _, err := db.pool.Exec(ctx, sql.Schema()); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}

	return nil
}

func (db *Database) checkRecipesTableExists(ctx context.Context) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = 'recipes'
		)`).Scan(&exists)
	return exists, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
