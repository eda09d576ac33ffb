package domain

// ShoeConfig configures a single simulated shoe.
type ShoeConfig struct {
	HandCount        int
	BetUnit          float64
	StartingBankroll float64
	Staking          StakingConfig

	// Distribution overrides the draw distribution. Nil means
	// TheoreticalPrior. Non-nil values must pass Validate.
	Distribution *Estimate
}

// DrawDistribution returns the effective outcome distribution for the shoe.
func (c ShoeConfig) DrawDistribution() Estimate {
	if c.Distribution != nil {
		return *c.Distribution
	}
	return TheoreticalPrior
}

// RoundPoint records the state of one simulated round. Points form the
// bankroll trajectory persisted for post-hoc analysis.
type RoundPoint struct {
	RunID    string
	Round    int // 1-based
	BetSide  Outcome
	Outcome  Outcome
	Wager    float64
	Result   RoundResult
	Bankroll float64 // after settlement
}

// ShoeRunResult is the immutable outcome of one simulated shoe.
type ShoeRunResult struct {
	RunID   string
	BatchID string
	Seed    int64

	Outcomes      []Outcome
	RoundsPlayed  int
	FinalBankroll float64
	PeakBankroll  float64
	Busted        bool

	// Trajectory holds per-round points in play order.
	Trajectory []*RoundPoint
}
