// Package batch executes many independent shoe simulations and
// aggregates their results. Runs share no mutable state, so they execute
// on a bounded worker pool with independently seeded draw streams.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/idhash"
	"baccarat-lab/internal/observability"
	"baccarat-lab/internal/random"
	"baccarat-lab/internal/simulation"
	"baccarat-lab/internal/staking"
	"baccarat-lab/internal/storage"
)

// ErrInvalidRunCount is returned when a batch is configured with a
// non-positive run count: the bust rate would divide by zero.
var ErrInvalidRunCount = errors.New("run count must be positive")

// Runner executes batches of shoe simulations.
type Runner struct {
	runStore   storage.ShoeRunStore
	batchStore storage.BatchResultStore
	trajStore  storage.TrajectoryStore
	metrics    *observability.Metrics
	logger     *log.Logger

	// onRunComplete, when set, observes each completed run in completion
	// order. Used by the live feed; must not mutate the result.
	onRunComplete func(*domain.ShoeRunResult)
}

// RunnerOptions contains configuration for creating a Runner. All stores
// are optional; a nil store skips that persistence concern.
type RunnerOptions struct {
	RunStore      storage.ShoeRunStore
	BatchStore    storage.BatchResultStore
	TrajStore     storage.TrajectoryStore
	Metrics       *observability.Metrics
	Logger        *log.Logger
	OnRunComplete func(*domain.ShoeRunResult)
}

// NewRunner creates a batch runner.
func NewRunner(opts RunnerOptions) *Runner {
	return &Runner{
		runStore:      opts.RunStore,
		batchStore:    opts.BatchStore,
		trajStore:     opts.TrajStore,
		metrics:       opts.Metrics,
		logger:        opts.Logger,
		onRunComplete: opts.OnRunComplete,
	}
}

// RunBatch executes cfg.RunCount independent shoes and aggregates them.
// Cancelling ctx aborts the batch between runs: already-completed runs
// are aggregated and persisted, pending ones are skipped, and the
// partial aggregate is returned alongside ctx's error.
func (r *Runner) RunBatch(ctx context.Context, cfg domain.BatchConfig) (*domain.BatchResult, error) {
	if cfg.RunCount <= 0 {
		return nil, ErrInvalidRunCount
	}

	policy, err := staking.FromConfig(cfg.Shoe.Staking)
	if err != nil {
		return nil, err
	}

	// Validate the shoe configuration once, before any workers start.
	probe := &simulation.ShoeInput{
		Config: cfg.Shoe,
		Policy: policy,
		Source: random.NewSeeded(0),
	}
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.RunCount {
		workers = cfg.RunCount
	}

	batchID := uuid.NewString()
	started := time.Now()
	r.log("batch %s: %d runs of %d hands (%s), %d workers",
		batchID, cfg.RunCount, cfg.Shoe.HandCount, policy.ID(), workers)

	jobs := make(chan int)
	resultCh := make(chan *domain.ShoeRunResult)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				// Each run owns an independent stream derived from the
				// base seed and its index; streams never cross runs.
				runSeed := seed + int64(idx)
				input := &simulation.ShoeInput{
					RunID:  idhash.ComputeRunID(batchID, idx, policy.ID(), runSeed),
					Config: cfg.Shoe,
					Policy: policy,
					Source: random.NewSeeded(runSeed),
				}
				result, runErr := simulation.RunShoe(ctx, input)
				if runErr != nil {
					// Configuration was validated upfront; a per-run
					// failure here is a programming error worth surfacing.
					r.log("batch %s: run %d failed: %v", batchID, idx, runErr)
					continue
				}
				result.BatchID = batchID
				result.Seed = runSeed
				resultCh <- result
			}
		}()
	}

	go func() {
		defer close(jobs)
		for idx := 0; idx < cfg.RunCount; idx++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- idx:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]*domain.ShoeRunResult, 0, cfg.RunCount)
	for result := range resultCh {
		results = append(results, result)
		r.observeRun(result)
		if r.onRunComplete != nil {
			r.onRunComplete(result)
		}
	}

	agg := aggregate(results)
	agg.BatchID = batchID
	agg.PolicyID = policy.ID()
	agg.CreatedAt = time.Now().UnixMilli()

	if r.metrics != nil {
		r.metrics.BatchesCompleted.WithLabelValues(string(cfg.Shoe.Staking.PolicyType)).Inc()
		r.metrics.BatchDuration.Observe(time.Since(started).Seconds())
	}

	if err := r.persist(ctx, agg, results); err != nil {
		return agg, err
	}

	r.log("batch %s: %d/%d runs, bust rate %.4f, avg final %.2f",
		batchID, agg.RunCount, cfg.RunCount, agg.BustRate, agg.AvgFinalBankroll)

	if ctx.Err() != nil && agg.RunCount < cfg.RunCount {
		return agg, ctx.Err()
	}
	return agg, nil
}

// persist writes the aggregate, runs, and trajectories to whichever
// stores are configured.
func (r *Runner) persist(ctx context.Context, agg *domain.BatchResult, results []*domain.ShoeRunResult) error {
	if r.batchStore != nil {
		if err := r.batchStore.Insert(ctx, agg); err != nil {
			return fmt.Errorf("persist batch %s: %w", agg.BatchID, err)
		}
	}
	if r.runStore != nil {
		for _, result := range results {
			if err := r.runStore.Insert(ctx, result); err != nil {
				return fmt.Errorf("persist run %s: %w", result.RunID, err)
			}
		}
	}
	if r.trajStore != nil {
		for _, result := range results {
			if len(result.Trajectory) == 0 {
				continue
			}
			if err := r.trajStore.InsertBulk(ctx, result.Trajectory); err != nil {
				return fmt.Errorf("persist trajectory %s: %w", result.RunID, err)
			}
		}
	}
	return nil
}

func (r *Runner) observeRun(result *domain.ShoeRunResult) {
	if r.metrics == nil {
		return
	}
	r.metrics.ShoeRunsCompleted.Inc()
	r.metrics.RoundsSimulated.Add(float64(result.RoundsPlayed))
	if result.Busted {
		r.metrics.BustsTotal.Inc()
	}
}

func (r *Runner) log(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
