package reporting

import "time"

// Report summarizes stored batch simulation results.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	BatchCount  int
	PolicyCount int

	// Data Summary
	DataSummary DataSummary

	// Batch Rows (sorted by created_at, then batch_id)
	BatchRows []BatchRow

	// Policy Comparison (one row per distinct policy ID)
	PolicyComparison []PolicyComparisonRow
}

// DataSummary describes the data the report covers.
type DataSummary struct {
	TotalBatches   int
	TotalRuns      int
	TotalBusts     int
	DateRangeStart int64 // Unix ms
	DateRangeEnd   int64 // Unix ms
}

// BatchRow is one row in the per-batch results table.
type BatchRow struct {
	BatchID             string
	PolicyID            string
	CreatedAt           int64 // Unix ms
	RunCount            int
	BustCount           int
	BustRate            float64
	AvgFinalBankroll    float64
	MedianFinalBankroll float64
	StddevFinalBankroll float64
	P10FinalBankroll    float64
	P90FinalBankroll    float64
	BestFinalBankroll   float64
	WorstFinalBankroll  float64
}

// PolicyComparisonRow aggregates every batch sharing a policy ID.
type PolicyComparisonRow struct {
	PolicyID         string
	BatchCount       int
	TotalRuns        int
	BustRate         float64 // run-weighted across batches
	AvgFinalBankroll float64 // run-weighted across batches
}
