// Package history owns the canonical live outcome sequence. The
// statistics core treats the sequence as read-only input; only this
// store appends, clears, or imports outcomes.
package history

import (
	"sync"

	"baccarat-lab/internal/domain"
)

// Store is the mutable outcome history. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	outcomes []domain.Outcome
}

// NewStore creates an empty history store.
func NewStore() *Store {
	return &Store{}
}

// Append records one outcome at the end of the history.
func (s *Store) Append(o domain.Outcome) error {
	if !o.Valid() {
		return domain.ErrUnknownOutcome
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, o)
	return nil
}

// Clear removes all recorded outcomes.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = nil
}

// Len returns the number of recorded outcomes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.outcomes)
}

// Outcomes returns a chronological snapshot. The copy never aliases
// internal state, so callers can hold it across later appends.
func (s *Store) Outcomes() []domain.Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneOutcomes(s.outcomes)
}

// ImportRLE replaces the history with the decoded sequence. The store is
// left unchanged when decoding fails.
func (s *Store) ImportRLE(encoded string) error {
	seq, err := DecodeRLE(encoded)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = seq
	return nil
}

// ExportRLE returns the run-length encoding of the current history.
func (s *Store) ExportRLE() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return EncodeRLE(s.outcomes)
}
