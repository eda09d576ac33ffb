package staking

import (
	"fmt"

	"baccarat-lab/internal/domain"
)

// MartingalePolicy doubles after each loss and resets after a win. The
// escalation carries no upper bound; exposing that risk is what the
// simulator exists for.
type MartingalePolicy struct {
	BaseUnit float64
}

// NewMartingalePolicy creates a new MartingalePolicy.
func NewMartingalePolicy(baseUnit float64) *MartingalePolicy {
	return &MartingalePolicy{BaseUnit: baseUnit}
}

// ID returns the policy identifier including parameters.
func (p *MartingalePolicy) ID() string {
	return fmt.Sprintf("MARTINGALE_u%g", p.BaseUnit)
}

// NextStake implements the progression. Losses double the amount actually
// wagered rather than the nominal stake: when the bankroll capped the
// wager, escalating from the nominal stake would inflate the progression
// beyond what was truly put at risk.
func (p *MartingalePolicy) NextStake(current, wagered float64, result domain.RoundResult) float64 {
	switch result {
	case domain.RoundWin:
		return p.BaseUnit
	case domain.RoundPush:
		return current
	case domain.RoundLoss:
		return 2 * wagered
	}
	return current
}

var _ Policy = (*MartingalePolicy)(nil)
