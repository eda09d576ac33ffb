// Package stats turns raw outcome sequences into smoothed probability
// estimates, a sample-size confidence signal, and an alternation-pattern
// signal. All functions are pure and safe for concurrent use.
package stats

import (
	"math"

	"baccarat-lab/internal/domain"
)

// Smoothing and blending parameters.
const (
	// laplaceAlpha is the additive smoothing strength per outcome. It keeps
	// every probability strictly positive even with zero observations.
	laplaceAlpha = 1.0

	// empiricalWeight and priorWeight blend the smoothed empirical
	// distribution against domain.TheoreticalPrior.
	empiricalWeight = 0.7
	priorWeight     = 0.3

	// confidenceScale controls how fast confidence saturates with sample
	// size: confidence = 1 - e^(-n/confidenceScale).
	confidenceScale = 12.0
)

// Summary is the full statistical summary of an outcome sequence.
type Summary struct {
	Counts map[domain.Outcome]int
	Total  int

	// Probabilities is the smoothed empirical distribution blended with the
	// theoretical prior, normalized to sum to 1.
	Probabilities domain.Estimate

	// Confidence is a saturating function of sample size only, in [0,1).
	// It is a display heuristic, not a statistical confidence interval.
	Confidence float64

	// AlternationRate is the fraction of consecutive Banker/Player pairs
	// whose members differ, Ties excluded from pairing. Zero when fewer
	// than two qualifying outcomes exist.
	AlternationRate float64
}

// Summarize computes the summary for a sequence of any length, including
// empty. The sequence is read-only input; it is never retained or mutated.
func Summarize(seq []domain.Outcome) Summary {
	counts := map[domain.Outcome]int{
		domain.OutcomeBanker: 0,
		domain.OutcomePlayer: 0,
		domain.OutcomeTie:    0,
	}
	for _, o := range seq {
		counts[o]++
	}
	total := len(seq)

	return Summary{
		Counts:          counts,
		Total:           total,
		Probabilities:   blendProbabilities(counts, total),
		Confidence:      computeConfidence(total),
		AlternationRate: alternationRate(seq),
	}
}

// blendProbabilities applies Laplace smoothing, blends against the
// theoretical prior, clamps, and renormalizes so the result sums to 1.
func blendProbabilities(counts map[domain.Outcome]int, total int) domain.Estimate {
	// With no observations the result is the prior itself, exactly.
	if total == 0 {
		return domain.TheoreticalPrior
	}

	denom := float64(total) + 3*laplaceAlpha

	blended := func(o domain.Outcome) float64 {
		smoothed := (float64(counts[o]) + laplaceAlpha) / denom
		v := empiricalWeight*smoothed + priorWeight*domain.TheoreticalPrior.P(o)
		return clamp01(v)
	}

	est := domain.Estimate{
		Banker: blended(domain.OutcomeBanker),
		Player: blended(domain.OutcomePlayer),
		Tie:    blended(domain.OutcomeTie),
	}

	// Clamping alone can leave the sum slightly off 1; renormalize.
	sum := est.Sum()
	if sum > 0 {
		est.Banker /= sum
		est.Player /= sum
		est.Tie /= sum
	}
	return est
}

// computeConfidence maps sample size to [0,1), strictly increasing in n.
func computeConfidence(n int) float64 {
	if n <= 0 {
		return 0
	}
	c := 1 - math.Exp(-float64(n)/confidenceScale)
	if c < 0 {
		return 0
	}
	if c >= 1 {
		return math.Nextafter(1, 0)
	}
	return c
}

// alternationRate measures how often consecutive non-Tie outcomes differ.
func alternationRate(seq []domain.Outcome) float64 {
	var prev domain.Outcome
	qualifying := 0
	pairs := 0
	changed := 0

	for _, o := range seq {
		if o == domain.OutcomeTie {
			continue
		}
		qualifying++
		if qualifying > 1 {
			pairs++
			if o != prev {
				changed++
			}
		}
		prev = o
	}

	if pairs == 0 {
		return 0
	}
	return float64(changed) / float64(pairs)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
