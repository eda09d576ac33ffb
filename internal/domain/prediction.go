package domain

// Prediction is the single actionable recommendation derived from an
// Estimate. Side is always Banker or Player; Tie is treated as a push by
// every supported staking system, so its probability is surfaced only as
// context.
type Prediction struct {
	Side           Outcome
	Probability    float64
	TieProbability float64
}
