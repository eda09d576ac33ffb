// Package migrations carries the embedded schemas for both storage
// backends and the runners that apply them. Keeping the SQL in the binary
// lets the commands and the store tests migrate without a checkout.
package migrations

import "embed"

// PostgresFS holds the shoe_runs and batch_results schema files.
//
//go:embed postgres/*.sql
var PostgresFS embed.FS

// ClickhouseFS holds the round_points trajectory schema files.
//
//go:embed clickhouse/*.sql
var ClickhouseFS embed.FS
