// Package main runs a batch of shoe simulations from the command line and
// prints the aggregate result.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"baccarat-lab/internal/batch"
	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/storage"
	chstore "baccarat-lab/internal/storage/clickhouse"
	"baccarat-lab/internal/storage/memory"
	"baccarat-lab/internal/storage/migrations"
	pgstore "baccarat-lab/internal/storage/postgres"
)

func main() {
	// Simulation parameters
	runCount := flag.Int("runs", 1000, "Number of independent shoe runs")
	handCount := flag.Int("hands", 70, "Hands per shoe")
	betUnit := flag.Float64("bet-unit", 10, "Base bet unit")
	bankroll := flag.Float64("bankroll", 1000, "Starting bankroll per run")
	policyType := flag.String("policy", "FLAT", "Staking policy: FLAT or MARTINGALE")
	baseUnit := flag.Float64("base-unit", 0, "Staking base unit (defaults to bet unit)")
	seed := flag.Int64("seed", 0, "Base seed; 0 seeds from the clock")
	workers := flag.Int("workers", 0, "Concurrent workers; 0 means one per CPU")

	// Storage
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse connection string (trajectories)")
	useMemory := flag.Bool("use-memory", true, "Use in-memory storage")

	// Output
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	logger := log.New(os.Stderr, "[simulate] ", log.LstdFlags)

	*policyType = strings.ToUpper(*policyType)
	if *baseUnit == 0 {
		*baseUnit = *betUnit
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	// Create stores
	var runStore storage.ShoeRunStore = memory.NewShoeRunStore()
	var batchStore storage.BatchResultStore = memory.NewBatchResultStore()
	var trajStore storage.TrajectoryStore = memory.NewTrajectoryStore()

	if !*useMemory {
		if *postgresDSN == "" {
			logger.Fatal("--postgres-dsn is required when not using --use-memory")
		}

		pool, err := pgstore.NewPool(ctx, *postgresDSN)
		if err != nil {
			logger.Fatalf("connect to postgres: %v", err)
		}
		defer pool.Close()

		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			logger.Fatalf("run postgres migrations: %v", err)
		}
		runStore = pgstore.NewShoeRunStore(pool)
		batchStore = pgstore.NewBatchResultStore(pool)

		// Trajectories go to ClickHouse only when a DSN is given.
		trajStore = nil
		if *clickhouseDSN != "" {
			conn, err := chstore.NewConn(ctx, *clickhouseDSN)
			if err != nil {
				logger.Fatalf("connect to clickhouse: %v", err)
			}
			defer conn.Close()

			if err := migrations.RunClickhouseMigrations(ctx, conn); err != nil {
				logger.Fatalf("run clickhouse migrations: %v", err)
			}
			trajStore = chstore.NewTrajectoryStore(conn)
		}
	}

	runner := batch.NewRunner(batch.RunnerOptions{
		RunStore:   runStore,
		BatchStore: batchStore,
		TrajStore:  trajStore,
		Logger:     logger,
	})

	cfg := domain.BatchConfig{
		RunCount: *runCount,
		Seed:     *seed,
		Workers:  *workers,
		Shoe: domain.ShoeConfig{
			HandCount:        *handCount,
			BetUnit:          *betUnit,
			StartingBankroll: *bankroll,
			Staking: domain.StakingConfig{
				PolicyType: domain.StakingPolicyType(*policyType),
				BaseUnit:   *baseUnit,
			},
		},
	}

	result, err := runner.RunBatch(ctx, cfg)
	if err != nil {
		logger.Fatalf("batch failed: %v", err)
	}

	if *outputJSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
	} else {
		printBatchResult(result)
	}
}

func printBatchResult(b *domain.BatchResult) {
	fmt.Printf("Batch:       %s\n", b.BatchID)
	fmt.Printf("Policy:      %s\n", b.PolicyID)
	fmt.Printf("Runs:        %d\n", b.RunCount)
	fmt.Printf("Busts:       %d (%.2f%%)\n", b.BustCount, b.BustRate*100)
	fmt.Printf("Avg final:   %.2f\n", b.AvgFinalBankroll)
	fmt.Printf("Median:      %.2f\n", b.MedianFinalBankroll)
	fmt.Printf("Stddev:      %.2f\n", b.StddevFinalBankroll)
	fmt.Printf("P10 / P90:   %.2f / %.2f\n", b.P10FinalBankroll, b.P90FinalBankroll)
	fmt.Printf("Best/Worst:  %.2f / %.2f\n", b.BestFinalBankroll, b.WorstFinalBankroll)
}
