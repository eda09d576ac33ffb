package memory

import (
	"context"
	"sort"
	"sync"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/storage"
)

// BatchResultStore is an in-memory implementation of storage.BatchResultStore.
type BatchResultStore struct {
	mu   sync.RWMutex
	data map[string]*domain.BatchResult // keyed by batch_id
}

// NewBatchResultStore creates a new in-memory batch result store.
func NewBatchResultStore() *BatchResultStore {
	return &BatchResultStore{data: make(map[string]*domain.BatchResult)}
}

// Insert adds a batch result. Returns ErrDuplicateKey if batch_id exists.
func (s *BatchResultStore) Insert(_ context.Context, b *domain.BatchResult) error {
	if b == nil || b.BatchID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[b.BatchID]; exists {
		return storage.ErrDuplicateKey
	}
	c := *b
	s.data[b.BatchID] = &c
	return nil
}

// GetByID retrieves a batch by its ID. Returns ErrNotFound if not exists.
func (s *BatchResultStore) GetByID(_ context.Context, batchID string) (*domain.BatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.data[batchID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	c := *b
	return &c, nil
}

// List retrieves all batches, ordered by created_at ASC.
func (s *BatchResultStore) List(_ context.Context) ([]*domain.BatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.BatchResult, 0, len(s.data))
	for _, b := range s.data {
		c := *b
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt < result[j].CreatedAt
		}
		return result[i].BatchID < result[j].BatchID
	})
	return result, nil
}

var _ storage.BatchResultStore = (*BatchResultStore)(nil)
