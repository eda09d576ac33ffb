// Package main generates a Markdown report and CSV export from stored
// batch results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"baccarat-lab/internal/reporting"
	"baccarat-lab/internal/storage"
	"baccarat-lab/internal/storage/memory"
	pgstore "baccarat-lab/internal/storage/postgres"
)

func main() {
	outputDir := flag.String("output-dir", "docs", "Output directory for generated files")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string")
	useMemory := flag.Bool("use-memory", false, "Use empty in-memory storage (produces a blank report)")
	flag.Parse()

	ctx := context.Background()

	if !*useMemory && *postgresDSN == "" {
		fmt.Fprintln(os.Stderr, "Error: --postgres-dsn is required when not using --use-memory")
		os.Exit(1)
	}

	var batchStore storage.BatchResultStore = memory.NewBatchResultStore()
	if !*useMemory {
		pool, err := pgstore.NewPool(ctx, *postgresDSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to postgres: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()
		batchStore = pgstore.NewBatchResultStore(pool)
	}

	report, err := reporting.NewGenerator(batchStore).Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	mdPath := filepath.Join(*outputDir, "REPORT.md")
	if err := os.WriteFile(mdPath, []byte(reporting.RenderMarkdown(report)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", mdPath, err)
		os.Exit(1)
	}

	csvPath := filepath.Join(*outputDir, "batches.csv")
	if err := os.WriteFile(csvPath, []byte(reporting.RenderCSV(report.BatchRows)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", csvPath, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s and %s (%d batches, %d policies)\n",
		mdPath, csvPath, report.BatchCount, report.PolicyCount)
}
