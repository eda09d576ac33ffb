// Package simulation runs single simulated shoes: per-round outcome
// draws, adaptive bet-side selection, wager settlement, and stake
// progression against one bankroll.
package simulation

import (
	"context"
	"errors"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/predictor"
	"baccarat-lab/internal/random"
	"baccarat-lab/internal/staking"
	"baccarat-lab/internal/stats"
)

// Configuration errors, surfaced before any rounds run.
var (
	ErrInvalidBetUnit   = errors.New("bet unit must not be negative")
	ErrInvalidBankroll  = errors.New("starting bankroll must not be negative")
	ErrInvalidHandCount = errors.New("hand count must not be negative")
	ErrMissingPolicy    = errors.New("staking policy is required")
	ErrMissingSource    = errors.New("random source is required")
)

// Payout multipliers on the wagered amount for a winning bet.
const (
	// bankerPayout models the standard 5% commission on Banker wins.
	bankerPayout = 0.95
	playerPayout = 1.00
)

// ShoeInput bundles everything one shoe run needs.
type ShoeInput struct {
	RunID  string
	Config domain.ShoeConfig
	Policy staking.Policy
	Source random.Source
}

// Validate checks the input at the package boundary.
func (in *ShoeInput) Validate() error {
	if in.Policy == nil {
		return ErrMissingPolicy
	}
	if in.Source == nil {
		return ErrMissingSource
	}
	if in.Config.BetUnit < 0 {
		return ErrInvalidBetUnit
	}
	if in.Config.StartingBankroll < 0 {
		return ErrInvalidBankroll
	}
	if in.Config.HandCount < 0 {
		return ErrInvalidHandCount
	}
	if in.Config.Distribution != nil {
		if err := in.Config.Distribution.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RunShoe simulates up to HandCount rounds and returns the immutable run
// result. The opening stake is Config.BetUnit; the staking policy takes
// over from the second round on. Degenerate but non-negative inputs (zero
// hands, zero bankroll, zero bet unit) produce well-defined results
// rather than errors.
//
// Each round the bettor re-derives the recommended side from the outcomes
// seen so far in this shoe: an adaptive bettor chasing the current
// blended recommendation, not a fixed-side bettor.
func RunShoe(_ context.Context, input *ShoeInput) (*domain.ShoeRunResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cfg := input.Config
	dist := cfg.DrawDistribution()

	stake := cfg.BetUnit
	bankroll := cfg.StartingBankroll
	peak := bankroll
	busted := false

	outcomes := make([]domain.Outcome, 0, cfg.HandCount)
	trajectory := make([]*domain.RoundPoint, 0, cfg.HandCount)

	for round := 1; round <= cfg.HandCount; round++ {
		if bankroll <= 0 {
			busted = true
			break
		}

		// The side is chosen before the hand is dealt, from everything
		// dealt so far.
		summary := stats.Summarize(outcomes)
		side := predictor.Predict(summary.Probabilities).Side

		outcome := random.Draw(input.Source, dist)
		outcomes = append(outcomes, outcome)

		// A single wager can never drive the bankroll negative.
		wager := stake
		if bankroll < wager {
			wager = bankroll
		}
		bankroll -= wager

		var result domain.RoundResult
		switch {
		case outcome == domain.OutcomeTie:
			// Push: the table voids the wager and refunds it in full.
			bankroll += wager
			result = domain.RoundPush
		case outcome == side:
			payout := playerPayout
			if side == domain.OutcomeBanker {
				payout = bankerPayout
			}
			bankroll += wager + wager*payout
			result = domain.RoundWin
		default:
			result = domain.RoundLoss
		}

		stake = input.Policy.NextStake(stake, wager, result)
		if bankroll > peak {
			peak = bankroll
		}

		trajectory = append(trajectory, &domain.RoundPoint{
			RunID:    input.RunID,
			Round:    round,
			BetSide:  side,
			Outcome:  outcome,
			Wager:    wager,
			Result:   result,
			Bankroll: bankroll,
		})
	}

	return &domain.ShoeRunResult{
		RunID:         input.RunID,
		Outcomes:      outcomes,
		RoundsPlayed:  len(outcomes),
		FinalBankroll: bankroll,
		PeakBankroll:  peak,
		Busted:        busted,
		Trajectory:    trajectory,
	}, nil
}
