package postgres

import (
	"context"
	"fmt"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/history"
	"baccarat-lab/internal/storage"

	"github.com/jackc/pgx/v5"
)

// ShoeRunStore implements storage.ShoeRunStore using PostgreSQL.
// Outcome sequences are persisted as run-length text; trajectories live in
// the trajectory store, not here.
type ShoeRunStore struct {
	pool *Pool
}

// NewShoeRunStore creates a new ShoeRunStore.
func NewShoeRunStore(pool *Pool) *ShoeRunStore {
	return &ShoeRunStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ShoeRunStore = (*ShoeRunStore)(nil)

// Insert adds a completed run. Returns ErrDuplicateKey if run_id exists.
func (s *ShoeRunStore) Insert(ctx context.Context, r *domain.ShoeRunResult) error {
	query := `
		INSERT INTO shoe_runs (
			run_id, batch_id, seed, outcomes, rounds_played,
			final_bankroll, peak_bankroll, busted
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		r.RunID,
		r.BatchID,
		r.Seed,
		history.EncodeRLE(r.Outcomes),
		r.RoundsPlayed,
		r.FinalBankroll,
		r.PeakBankroll,
		r.Busted,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert shoe run: %w", err)
	}
	return nil
}

// GetByID retrieves a run by its ID. Returns ErrNotFound if not exists.
func (s *ShoeRunStore) GetByID(ctx context.Context, runID string) (*domain.ShoeRunResult, error) {
	query := `
		SELECT run_id, batch_id, seed, outcomes, rounds_played,
		       final_bankroll, peak_bankroll, busted
		FROM shoe_runs
		WHERE run_id = $1
	`

	row := s.pool.QueryRow(ctx, query, runID)
	r, err := scanShoeRun(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get shoe run by id: %w", err)
	}
	return r, nil
}

// GetByBatchID retrieves all runs of a batch, ordered by run_id ASC.
func (s *ShoeRunStore) GetByBatchID(ctx context.Context, batchID string) ([]*domain.ShoeRunResult, error) {
	query := `
		SELECT run_id, batch_id, seed, outcomes, rounds_played,
		       final_bankroll, peak_bankroll, busted
		FROM shoe_runs
		WHERE batch_id = $1
		ORDER BY run_id ASC
	`

	rows, err := s.pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("get shoe runs by batch id: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ShoeRunResult
	for rows.Next() {
		r, err := scanShoeRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shoe run row: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shoe run rows: %w", err)
	}
	return runs, nil
}

// scanShoeRun scans a single row into a ShoeRunResult.
func scanShoeRun(row pgx.Row) (*domain.ShoeRunResult, error) {
	var r domain.ShoeRunResult
	var encoded string

	err := row.Scan(
		&r.RunID,
		&r.BatchID,
		&r.Seed,
		&encoded,
		&r.RoundsPlayed,
		&r.FinalBankroll,
		&r.PeakBankroll,
		&r.Busted,
	)
	if err != nil {
		return nil, err
	}

	outcomes, err := history.DecodeRLE(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode stored outcomes: %w", err)
	}
	r.Outcomes = outcomes
	return &r, nil
}
