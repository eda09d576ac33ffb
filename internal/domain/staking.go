package domain

// StakingPolicyType identifies a staking progression variant.
type StakingPolicyType string

// Staking policy type constants.
const (
	StakingFlat       StakingPolicyType = "FLAT"
	StakingMartingale StakingPolicyType = "MARTINGALE"
)

// StakingConfig holds staking policy construction parameters.
type StakingConfig struct {
	PolicyType StakingPolicyType
	BaseUnit   float64
}

// RoundResult classifies a finished round from the bettor's perspective.
type RoundResult string

// Round result constants.
const (
	RoundWin  RoundResult = "WIN"
	RoundLoss RoundResult = "LOSS"
	RoundPush RoundResult = "PUSH"
)
