// Package memory provides in-memory storage implementations for tests
// and store-free CLI runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/storage"
)

// ShoeRunStore is an in-memory implementation of storage.ShoeRunStore.
type ShoeRunStore struct {
	mu   sync.RWMutex
	data map[string]*domain.ShoeRunResult // keyed by run_id
}

// NewShoeRunStore creates a new in-memory shoe run store.
func NewShoeRunStore() *ShoeRunStore {
	return &ShoeRunStore{data: make(map[string]*domain.ShoeRunResult)}
}

// Insert adds a completed run. Returns ErrDuplicateKey if run_id exists.
func (s *ShoeRunStore) Insert(_ context.Context, r *domain.ShoeRunResult) error {
	if r == nil || r.RunID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[r.RunID]; exists {
		return storage.ErrDuplicateKey
	}
	s.data[r.RunID] = cloneRun(r)
	return nil
}

// GetByID retrieves a run by its ID. Returns ErrNotFound if not exists.
func (s *ShoeRunStore) GetByID(_ context.Context, runID string) (*domain.ShoeRunResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.data[runID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneRun(r), nil
}

// GetByBatchID retrieves all runs of a batch, ordered by run_id ASC.
func (s *ShoeRunStore) GetByBatchID(_ context.Context, batchID string) ([]*domain.ShoeRunResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.ShoeRunResult
	for _, r := range s.data {
		if r.BatchID == batchID {
			result = append(result, cloneRun(r))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RunID < result[j].RunID
	})
	return result, nil
}

// cloneRun deep-copies a run so stored state never aliases caller state.
func cloneRun(r *domain.ShoeRunResult) *domain.ShoeRunResult {
	c := *r
	c.Outcomes = domain.CloneOutcomes(r.Outcomes)
	if r.Trajectory != nil {
		c.Trajectory = make([]*domain.RoundPoint, len(r.Trajectory))
		for i, p := range r.Trajectory {
			pc := *p
			c.Trajectory[i] = &pc
		}
	}
	return &c
}

var _ storage.ShoeRunStore = (*ShoeRunStore)(nil)
