package domain

// BatchConfig configures a batch of independent shoe runs.
type BatchConfig struct {
	RunCount int
	Shoe     ShoeConfig

	// Seed is the base seed; each run derives its own independent stream
	// from it. Zero means seed from the clock.
	Seed int64

	// Workers bounds concurrent shoe runs. Zero or negative means one
	// worker per CPU.
	Workers int
}

// BatchResult aggregates a completed batch. Derived purely from the
// collected ShoeRunResults and immutable once produced.
type BatchResult struct {
	BatchID   string
	PolicyID  string
	CreatedAt int64 // Unix ms

	RunCount  int
	BustCount int
	BustRate  float64

	AvgFinalBankroll   float64
	BestFinalBankroll  float64
	WorstFinalBankroll float64

	// Distribution of final bankrolls across runs.
	MedianFinalBankroll float64
	StddevFinalBankroll float64
	P10FinalBankroll    float64
	P90FinalBankroll    float64
}
