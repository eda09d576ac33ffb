package batch

import (
	"math"
	"sort"

	"baccarat-lab/internal/domain"
)

// aggregate derives the batch summary from the collected run results.
// Results may arrive in any order; all order-independent statistics are
// computed over the sorted final bankrolls.
func aggregate(results []*domain.ShoeRunResult) *domain.BatchResult {
	n := len(results)
	if n == 0 {
		return &domain.BatchResult{}
	}

	finals := make([]float64, n)
	busts := 0
	sum := 0.0
	for i, r := range results {
		finals[i] = r.FinalBankroll
		sum += r.FinalBankroll
		if r.Busted {
			busts++
		}
	}
	sort.Float64s(finals)

	mean := sum / float64(n)

	return &domain.BatchResult{
		RunCount:  n,
		BustCount: busts,
		BustRate:  float64(busts) / float64(n),

		AvgFinalBankroll:   mean,
		BestFinalBankroll:  finals[n-1],
		WorstFinalBankroll: finals[0],

		MedianFinalBankroll: computePercentile(finals, 0.50),
		StddevFinalBankroll: computeStddev(finals, mean),
		P10FinalBankroll:    computePercentile(finals, 0.10),
		P90FinalBankroll:    computePercentile(finals, 0.90),
	}
}

// computeStddev calculates sample standard deviation (n-1 denominator).
func computeStddev(values []float64, mean float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// computePercentile uses linear interpolation.
// sorted must be pre-sorted ASC. p is the percentile (0.10 = 10th).
func computePercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p * float64(n-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
