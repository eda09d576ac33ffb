package staking

import (
	"fmt"

	"baccarat-lab/internal/domain"
)

// FlatPolicy wagers the base unit every round regardless of history.
type FlatPolicy struct {
	BaseUnit float64
}

// NewFlatPolicy creates a new FlatPolicy.
func NewFlatPolicy(baseUnit float64) *FlatPolicy {
	return &FlatPolicy{BaseUnit: baseUnit}
}

// ID returns the policy identifier including parameters.
func (p *FlatPolicy) ID() string {
	return fmt.Sprintf("FLAT_u%g", p.BaseUnit)
}

// NextStake resets to the base unit after wins and losses; pushes leave
// the stake untouched because the wager was refunded, not restaked.
func (p *FlatPolicy) NextStake(current, _ float64, result domain.RoundResult) float64 {
	if result == domain.RoundPush {
		return current
	}
	return p.BaseUnit
}

var _ Policy = (*FlatPolicy)(nil)
