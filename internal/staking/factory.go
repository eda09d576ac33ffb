package staking

import (
	"errors"

	"baccarat-lab/internal/domain"
)

// Factory errors
var (
	ErrUnknownPolicyType = errors.New("unknown staking policy type")
	ErrInvalidBaseUnit   = errors.New("staking base unit must be positive")
)

// FromConfig creates a Policy from domain.StakingConfig.
// Validates required parameters per policy type.
func FromConfig(cfg domain.StakingConfig) (Policy, error) {
	if cfg.BaseUnit <= 0 {
		return nil, ErrInvalidBaseUnit
	}

	switch cfg.PolicyType {
	case domain.StakingFlat:
		return NewFlatPolicy(cfg.BaseUnit), nil
	case domain.StakingMartingale:
		return NewMartingalePolicy(cfg.BaseUnit), nil
	default:
		return nil, ErrUnknownPolicyType
	}
}
