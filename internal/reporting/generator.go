package reporting

import (
	"context"
	"sort"
	"time"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/storage"
)

// Generator produces reports from stored batch results.
type Generator struct {
	batchStore storage.BatchResultStore
	now        func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(batchStore storage.BatchResultStore) *Generator {
	return &Generator{
		batchStore: batchStore,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces a complete report over all stored batches.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	batches, err := g.batchStore.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := generateBatchRows(batches)
	comparison := generatePolicyComparison(batches)

	policySet := make(map[string]struct{})
	for _, b := range batches {
		policySet[b.PolicyID] = struct{}{}
	}

	return &Report{
		GeneratedAt:      g.now(),
		BatchCount:       len(batches),
		PolicyCount:      len(policySet),
		DataSummary:      generateDataSummary(batches),
		BatchRows:        rows,
		PolicyComparison: comparison,
	}, nil
}

func generateDataSummary(batches []*domain.BatchResult) DataSummary {
	summary := DataSummary{TotalBatches: len(batches)}
	for i, b := range batches {
		summary.TotalRuns += b.RunCount
		summary.TotalBusts += b.BustCount
		if i == 0 || b.CreatedAt < summary.DateRangeStart {
			summary.DateRangeStart = b.CreatedAt
		}
		if b.CreatedAt > summary.DateRangeEnd {
			summary.DateRangeEnd = b.CreatedAt
		}
	}
	return summary
}

func generateBatchRows(batches []*domain.BatchResult) []BatchRow {
	rows := make([]BatchRow, 0, len(batches))
	for _, b := range batches {
		rows = append(rows, BatchRow{
			BatchID:             b.BatchID,
			PolicyID:            b.PolicyID,
			CreatedAt:           b.CreatedAt,
			RunCount:            b.RunCount,
			BustCount:           b.BustCount,
			BustRate:            b.BustRate,
			AvgFinalBankroll:    b.AvgFinalBankroll,
			MedianFinalBankroll: b.MedianFinalBankroll,
			StddevFinalBankroll: b.StddevFinalBankroll,
			P10FinalBankroll:    b.P10FinalBankroll,
			P90FinalBankroll:    b.P90FinalBankroll,
			BestFinalBankroll:   b.BestFinalBankroll,
			WorstFinalBankroll:  b.WorstFinalBankroll,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt != rows[j].CreatedAt {
			return rows[i].CreatedAt < rows[j].CreatedAt
		}
		return rows[i].BatchID < rows[j].BatchID
	})
	return rows
}

// generatePolicyComparison folds batches into per-policy rows. Rates and
// averages are weighted by run count so large batches dominate small ones.
func generatePolicyComparison(batches []*domain.BatchResult) []PolicyComparisonRow {
	type acc struct {
		batchCount int
		totalRuns  int
		totalBusts int
		bankroll   float64 // sum of final bankrolls across all runs
	}
	byPolicy := make(map[string]*acc)
	for _, b := range batches {
		a, ok := byPolicy[b.PolicyID]
		if !ok {
			a = &acc{}
			byPolicy[b.PolicyID] = a
		}
		a.batchCount++
		a.totalRuns += b.RunCount
		a.totalBusts += b.BustCount
		a.bankroll += b.AvgFinalBankroll * float64(b.RunCount)
	}

	rows := make([]PolicyComparisonRow, 0, len(byPolicy))
	for policyID, a := range byPolicy {
		row := PolicyComparisonRow{
			PolicyID:   policyID,
			BatchCount: a.batchCount,
			TotalRuns:  a.totalRuns,
		}
		if a.totalRuns > 0 {
			row.BustRate = float64(a.totalBusts) / float64(a.totalRuns)
			row.AvgFinalBankroll = a.bankroll / float64(a.totalRuns)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].PolicyID < rows[j].PolicyID })
	return rows
}
