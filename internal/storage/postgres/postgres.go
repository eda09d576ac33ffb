// Package postgres persists shoe run results and batch aggregates in
// PostgreSQL. Trajectories are too wide for row storage here and live in
// the ClickHouse store instead.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool wraps pgxpool.Pool; the run and batch stores share one pool.
type Pool struct {
	*pgxpool.Pool
}

// NewPool opens a connection pool for dsn and verifies it with a ping.
func NewPool(ctx context.Context, dsn string) (*Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// Close releases all pooled connections.
func (p *Pool) Close() {
	p.Pool.Close()
}

// unique_violation, the only error code the stores branch on.
const pgErrUniqueViolation = "23505"

// isDuplicateKeyError reports whether err is a unique constraint violation,
// which the stores surface as storage.ErrDuplicateKey.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrUniqueViolation
	}

	return false
}

// isNotFoundError reports whether err means the query matched no rows.
func isNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
