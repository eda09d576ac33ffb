package staking

import (
	"errors"
	"testing"

	"baccarat-lab/internal/domain"
)

func TestMartingale_EscalationAndReset(t *testing.T) {
	p := NewMartingalePolicy(10)

	// Consecutive full-wager losses starting at the unit: 10 → 20 → 40 → 80.
	stake := 10.0
	for _, want := range []float64{20, 40, 80} {
		stake = p.NextStake(stake, stake, domain.RoundLoss)
		if stake != want {
			t.Fatalf("stake after loss = %v, want %v", stake, want)
		}
	}

	// A win resets to the base unit.
	stake = p.NextStake(stake, stake, domain.RoundWin)
	if stake != 10 {
		t.Errorf("stake after win = %v, want 10", stake)
	}
}

func TestMartingale_DoublesWageredNotNominal(t *testing.T) {
	p := NewMartingalePolicy(10)

	// Nominal stake 80, but the bankroll only covered 25. The next stake
	// escalates from the 25 actually at risk, not from 80.
	next := p.NextStake(80, 25, domain.RoundLoss)
	if next != 50 {
		t.Errorf("stake after capped loss = %v, want 50", next)
	}
}

func TestMartingale_PushLeavesStakeUnchanged(t *testing.T) {
	p := NewMartingalePolicy(10)

	next := p.NextStake(40, 40, domain.RoundPush)
	if next != 40 {
		t.Errorf("stake after push = %v, want 40", next)
	}
}

func TestFlat_AlwaysBaseUnit(t *testing.T) {
	p := NewFlatPolicy(25)

	for _, result := range []domain.RoundResult{domain.RoundWin, domain.RoundLoss} {
		if got := p.NextStake(25, 25, result); got != 25 {
			t.Errorf("stake after %s = %v, want 25", result, got)
		}
	}
	// Pushes keep the current stake; for flat that is still the unit.
	if got := p.NextStake(25, 25, domain.RoundPush); got != 25 {
		t.Errorf("stake after push = %v, want 25", got)
	}
}

func TestFromConfig(t *testing.T) {
	cases := []struct {
		name    string
		cfg     domain.StakingConfig
		wantErr error
		wantID  string
	}{
		{
			name:   "flat",
			cfg:    domain.StakingConfig{PolicyType: domain.StakingFlat, BaseUnit: 5},
			wantID: "FLAT_u5",
		},
		{
			name:   "martingale",
			cfg:    domain.StakingConfig{PolicyType: domain.StakingMartingale, BaseUnit: 10},
			wantID: "MARTINGALE_u10",
		},
		{
			name:    "unknown type",
			cfg:     domain.StakingConfig{PolicyType: "FIBONACCI", BaseUnit: 10},
			wantErr: ErrUnknownPolicyType,
		},
		{
			name:    "zero unit",
			cfg:     domain.StakingConfig{PolicyType: domain.StakingFlat, BaseUnit: 0},
			wantErr: ErrInvalidBaseUnit,
		},
		{
			name:    "negative unit",
			cfg:     domain.StakingConfig{PolicyType: domain.StakingMartingale, BaseUnit: -1},
			wantErr: ErrInvalidBaseUnit,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := FromConfig(tc.cfg)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromConfig failed: %v", err)
			}
			if p.ID() != tc.wantID {
				t.Errorf("ID = %s, want %s", p.ID(), tc.wantID)
			}
		})
	}
}
