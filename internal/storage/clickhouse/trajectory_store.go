package clickhouse

import (
	"context"
	"fmt"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/storage"
)

// TrajectoryStore implements storage.TrajectoryStore using ClickHouse.
type TrajectoryStore struct {
	conn *Conn
}

// NewTrajectoryStore creates a new TrajectoryStore.
func NewTrajectoryStore(conn *Conn) *TrajectoryStore {
	return &TrajectoryStore{conn: conn}
}

// Compile-time interface check.
var _ storage.TrajectoryStore = (*TrajectoryStore)(nil)

// InsertBulk adds multiple points. Fails entire batch on duplicate (run_id, round).
// MergeTree doesn't enforce uniqueness, so duplicates are rejected with
// explicit checks before the batch insert.
func (s *TrajectoryStore) InsertBulk(ctx context.Context, points []*domain.RoundPoint) error {
	if len(points) == 0 {
		return nil
	}

	// Check for intra-batch duplicates
	type key struct {
		runID string
		round int
	}
	seen := make(map[key]struct{})
	for _, p := range points {
		k := key{p.RunID, p.Round}
		if _, exists := seen[k]; exists {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}

	// Check for duplicates against existing DB rows, one query per run.
	runs := make(map[string]struct{})
	for _, p := range points {
		runs[p.RunID] = struct{}{}
	}
	for runID := range runs {
		exists, err := s.exists(ctx, runID)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO round_points (
			run_id, round, bet_side, outcome, wager, result, bankroll
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, p := range points {
		err = batch.Append(
			p.RunID, uint32(p.Round),
			string(p.BetSide), string(p.Outcome),
			p.Wager, string(p.Result), p.Bankroll,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByRunID retrieves all points for a run, ordered by round ASC.
func (s *TrajectoryStore) GetByRunID(ctx context.Context, runID string) ([]*domain.RoundPoint, error) {
	query := `
		SELECT run_id, round, bet_side, outcome, wager, result, bankroll
		FROM round_points
		WHERE run_id = ?
		ORDER BY round ASC
	`

	rows, err := s.conn.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query by run id: %w", err)
	}
	defer rows.Close()

	var points []*domain.RoundPoint
	for rows.Next() {
		var p domain.RoundPoint
		var round uint32
		var betSide, outcome, result string

		err := rows.Scan(&p.RunID, &round, &betSide, &outcome, &p.Wager, &result, &p.Bankroll)
		if err != nil {
			return nil, fmt.Errorf("scan round point row: %w", err)
		}

		p.Round = int(round)
		p.BetSide = domain.Outcome(betSide)
		p.Outcome = domain.Outcome(outcome)
		p.Result = domain.RoundResult(result)
		points = append(points, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate round point rows: %w", err)
	}

	return points, nil
}

// exists checks if any point for the run exists.
func (s *TrajectoryStore) exists(ctx context.Context, runID string) (bool, error) {
	query := `SELECT count(*) FROM round_points WHERE run_id = ?`

	var count uint64
	if err := s.conn.QueryRow(ctx, query, runID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
