// Package predictor derives a single actionable recommendation from a
// probability estimate.
package predictor

import "baccarat-lab/internal/domain"

// Predict picks the higher of the Banker/Player probabilities as the
// recommended side; ties break toward Banker. Tie is never recommended
// because staking systems treat it as a push, so its probability is
// returned as context only.
func Predict(est domain.Estimate) domain.Prediction {
	side := domain.OutcomeBanker
	p := est.Banker
	if est.Player > est.Banker {
		side = domain.OutcomePlayer
		p = est.Player
	}
	return domain.Prediction{
		Side:           side,
		Probability:    p,
		TieProbability: est.Tie,
	}
}
