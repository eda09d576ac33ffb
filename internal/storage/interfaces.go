package storage

import (
	"context"

	"baccarat-lab/internal/domain"
)

// ShoeRunStore provides access to persisted shoe run results.
type ShoeRunStore interface {
	// Insert adds a completed run. Returns ErrDuplicateKey if run_id exists.
	Insert(ctx context.Context, r *domain.ShoeRunResult) error

	// GetByID retrieves a run by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, runID string) (*domain.ShoeRunResult, error)

	// GetByBatchID retrieves all runs of a batch, ordered by run_id ASC.
	GetByBatchID(ctx context.Context, batchID string) ([]*domain.ShoeRunResult, error)
}

// BatchResultStore provides access to persisted batch aggregates.
type BatchResultStore interface {
	// Insert adds a batch result. Returns ErrDuplicateKey if batch_id exists.
	Insert(ctx context.Context, b *domain.BatchResult) error

	// GetByID retrieves a batch by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, batchID string) (*domain.BatchResult, error)

	// List retrieves all batches, ordered by created_at ASC.
	List(ctx context.Context) ([]*domain.BatchResult, error)
}

// TrajectoryStore provides access to per-round bankroll trajectory points.
type TrajectoryStore interface {
	// InsertBulk adds multiple points. Fails entire batch on duplicate
	// (run_id, round).
	InsertBulk(ctx context.Context, points []*domain.RoundPoint) error

	// GetByRunID retrieves all points for a run, ordered by round ASC.
	GetByRunID(ctx context.Context, runID string) ([]*domain.RoundPoint, error)
}
