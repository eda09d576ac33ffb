package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/storage"
)

// TrajectoryStore is an in-memory implementation of storage.TrajectoryStore.
type TrajectoryStore struct {
	mu   sync.RWMutex
	data map[string]*domain.RoundPoint // keyed by run_id/round
}

// NewTrajectoryStore creates a new in-memory trajectory store.
func NewTrajectoryStore() *TrajectoryStore {
	return &TrajectoryStore{data: make(map[string]*domain.RoundPoint)}
}

func pointKey(runID string, round int) string {
	return fmt.Sprintf("%s/%d", runID, round)
}

// InsertBulk adds multiple points. Fails entire batch on duplicate
// (run_id, round), including intra-batch duplicates.
func (s *TrajectoryStore) InsertBulk(_ context.Context, points []*domain.RoundPoint) error {
	if len(points) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchKeys := make(map[string]struct{}, len(points))
	for _, p := range points {
		if p == nil || p.RunID == "" {
			return storage.ErrInvalidInput
		}
		key := pointKey(p.RunID, p.Round)
		if _, exists := s.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[key]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	for _, p := range points {
		c := *p
		s.data[pointKey(p.RunID, p.Round)] = &c
	}
	return nil
}

// GetByRunID retrieves all points for a run, ordered by round ASC.
func (s *TrajectoryStore) GetByRunID(_ context.Context, runID string) ([]*domain.RoundPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.RoundPoint
	for _, p := range s.data {
		if p.RunID == runID {
			c := *p
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Round < result[j].Round
	})
	return result, nil
}

var _ storage.TrajectoryStore = (*TrajectoryStore)(nil)
