// Package random provides injectable uniform draw sources and the
// categorical outcome draw built on top of them. Every simulated shoe
// consumes its own source, keeping runs independent and replayable.
package random

import (
	"math/rand"

	"baccarat-lab/internal/domain"
)

// Source yields uniform values in [0,1). Implementations need not be
// safe for concurrent use; each shoe run owns exactly one source.
type Source interface {
	Float64() float64
}

// seededSource wraps math/rand with an explicit seed for reproducibility.
type seededSource struct {
	rng *rand.Rand
}

// NewSeeded creates a deterministic pseudo-random source from a seed.
func NewSeeded(seed int64) Source {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Float64() float64 {
	return s.rng.Float64()
}

// Scripted replays a fixed series of uniform values, cycling when
// exhausted. Tests use it to pin down exact round-by-round behavior.
type Scripted struct {
	Values []float64
	next   int
}

// NewScripted creates a scripted source from explicit uniform values.
func NewScripted(values ...float64) *Scripted {
	return &Scripted{Values: values}
}

func (s *Scripted) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Draw maps one uniform value to an outcome under dist. The cumulative
// thresholds follow canonical outcome order: Banker, Player, Tie.
func Draw(src Source, dist domain.Estimate) domain.Outcome {
	u := src.Float64()
	if u < dist.Banker {
		return domain.OutcomeBanker
	}
	if u < dist.Banker+dist.Player {
		return domain.OutcomePlayer
	}
	return domain.OutcomeTie
}
