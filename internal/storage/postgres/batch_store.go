package postgres

import (
	"context"
	"fmt"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/storage"

	"github.com/jackc/pgx/v5"
)

// BatchResultStore implements storage.BatchResultStore using PostgreSQL.
type BatchResultStore struct {
	pool *Pool
}

// NewBatchResultStore creates a new BatchResultStore.
func NewBatchResultStore(pool *Pool) *BatchResultStore {
	return &BatchResultStore{pool: pool}
}

// Compile-time interface check.
var _ storage.BatchResultStore = (*BatchResultStore)(nil)

// Insert adds a batch result. Returns ErrDuplicateKey if batch_id exists.
func (s *BatchResultStore) Insert(ctx context.Context, b *domain.BatchResult) error {
	query := `
		INSERT INTO batch_results (
			batch_id, policy_id, created_at, run_count, bust_count, bust_rate,
			avg_final_bankroll, best_final_bankroll, worst_final_bankroll,
			median_final_bankroll, stddev_final_bankroll,
			p10_final_bankroll, p90_final_bankroll
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := s.pool.Exec(ctx, query,
		b.BatchID,
		b.PolicyID,
		b.CreatedAt,
		b.RunCount,
		b.BustCount,
		b.BustRate,
		b.AvgFinalBankroll,
		b.BestFinalBankroll,
		b.WorstFinalBankroll,
		b.MedianFinalBankroll,
		b.StddevFinalBankroll,
		b.P10FinalBankroll,
		b.P90FinalBankroll,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert batch result: %w", err)
	}
	return nil
}

// GetByID retrieves a batch by its ID. Returns ErrNotFound if not exists.
func (s *BatchResultStore) GetByID(ctx context.Context, batchID string) (*domain.BatchResult, error) {
	query := selectBatchColumns + ` WHERE batch_id = $1`

	row := s.pool.QueryRow(ctx, query, batchID)
	b, err := scanBatchResult(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get batch result by id: %w", err)
	}
	return b, nil
}

// List retrieves all batches, ordered by created_at ASC.
func (s *BatchResultStore) List(ctx context.Context) ([]*domain.BatchResult, error) {
	query := selectBatchColumns + ` ORDER BY created_at ASC, batch_id ASC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list batch results: %w", err)
	}
	defer rows.Close()

	var batches []*domain.BatchResult
	for rows.Next() {
		b, err := scanBatchResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch result row: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batch result rows: %w", err)
	}
	return batches, nil
}

const selectBatchColumns = `
	SELECT batch_id, policy_id, created_at, run_count, bust_count, bust_rate,
	       avg_final_bankroll, best_final_bankroll, worst_final_bankroll,
	       median_final_bankroll, stddev_final_bankroll,
	       p10_final_bankroll, p90_final_bankroll
	FROM batch_results
`

// scanBatchResult scans a single row into a BatchResult.
func scanBatchResult(row pgx.Row) (*domain.BatchResult, error) {
	var b domain.BatchResult
	err := row.Scan(
		&b.BatchID,
		&b.PolicyID,
		&b.CreatedAt,
		&b.RunCount,
		&b.BustCount,
		&b.BustRate,
		&b.AvgFinalBankroll,
		&b.BestFinalBankroll,
		&b.WorstFinalBankroll,
		&b.MedianFinalBankroll,
		&b.StddevFinalBankroll,
		&b.P10FinalBankroll,
		&b.P90FinalBankroll,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
