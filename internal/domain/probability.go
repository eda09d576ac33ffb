package domain

import (
	"errors"
	"math"
)

// Estimate holds one probability per outcome. A well-formed estimate sums
// to 1 within floating-point tolerance.
type Estimate struct {
	Banker float64
	Player float64
	Tie    float64
}

// TheoreticalPrior is the standard no-commission-adjusted baccarat
// distribution used both as the smoothing prior and as the default draw
// distribution for simulated shoes.
var TheoreticalPrior = Estimate{
	Banker: 0.4586,
	Player: 0.4462,
	Tie:    0.0952,
}

// EstimateSumTolerance bounds acceptable floating-point drift when
// validating caller-supplied distributions.
const EstimateSumTolerance = 1e-9

// ErrInvalidDistribution is returned when a caller-supplied outcome
// distribution has negative components or does not sum to 1.
var ErrInvalidDistribution = errors.New("distribution must be non-negative and sum to 1")

// P returns the probability assigned to a single outcome.
func (e Estimate) P(o Outcome) float64 {
	switch o {
	case OutcomeBanker:
		return e.Banker
	case OutcomePlayer:
		return e.Player
	case OutcomeTie:
		return e.Tie
	}
	return 0
}

// Sum returns the total mass of the estimate.
func (e Estimate) Sum() float64 {
	return e.Banker + e.Player + e.Tie
}

// Validate checks that e is a usable categorical distribution. Used for
// bias overrides supplied by callers; internally produced estimates are
// normalized and never need this check.
func (e Estimate) Validate() error {
	if e.Banker < 0 || e.Player < 0 || e.Tie < 0 {
		return ErrInvalidDistribution
	}
	if math.Abs(e.Sum()-1) > EstimateSumTolerance {
		return ErrInvalidDistribution
	}
	return nil
}
