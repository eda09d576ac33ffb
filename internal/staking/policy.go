// Package staking implements stake progression systems as pure state
// machines: each policy maps (current stake, amount actually wagered,
// round result) to the next stake.
package staking

import "baccarat-lab/internal/domain"

// Policy decides stake progression across the rounds of one shoe.
// Implementations are stateless; the simulator owns the stake variable.
type Policy interface {
	// ID returns the policy identifier including parameters.
	ID() string

	// NextStake maps a finished round to the stake for the following
	// round. wagered is the amount actually put at risk, which may be
	// lower than current when the bankroll capped the wager.
	NextStake(current, wagered float64, result domain.RoundResult) float64
}
