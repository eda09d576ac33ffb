package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// CHExecer is the slice of the ClickHouse connection the migration runner
// needs.
type CHExecer interface {
	Exec(ctx context.Context, query string, args ...any) error
}

// RunClickhouseMigrations applies all embedded SQL files in lexical order.
// The target database must already exist; the caller connects to it first.
func RunClickhouseMigrations(ctx context.Context, conn CHExecer) error {
	entries, err := fs.ReadDir(ClickhouseFS, "clickhouse")
	if err != nil {
		return fmt.Errorf("read embedded clickhouse migrations: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		data, err := fs.ReadFile(ClickhouseFS, "clickhouse/"+file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		if err := validateNoSemicolonInStrings(string(data)); err != nil {
			return fmt.Errorf("validate migration %s: %w", file, err)
		}

		// The driver doesn't support multiquery in Exec, so run each
		// statement individually.
		for _, stmt := range splitStatements(string(data)) {
			if err := conn.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply migration %s: %w", file, err)
			}
		}
	}

	return nil
}

// splitStatements splits SQL content into individual statements by semicolon.
// The splitter is intentionally simple: migrations must not put semicolons
// inside string literals or block comments, and must use -- style comments
// only. validateNoSemicolonInStrings enforces the literal rule at run time.
func splitStatements(input string) []string {
	var filtered []string
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		filtered = append(filtered, line)
	}
	joined := strings.Join(filtered, "\n")

	var stmts []string
	for _, part := range strings.Split(joined, ";") {
		stmt := strings.TrimSpace(part)
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// validateNoSemicolonInStrings checks that SQL doesn't contain semicolons
// inside single-quoted strings, which would break the statement splitter.
func validateNoSemicolonInStrings(sql string) error {
	inString := false
	for i := 0; i < len(sql); i++ {
		ch := sql[i]
		if ch == '\'' {
			// Handle escaped quotes ''
			if i+1 < len(sql) && sql[i+1] == '\'' {
				i++
				continue
			}
			inString = !inString
		} else if ch == ';' && inString {
			return fmt.Errorf("semicolon found inside string literal - this breaks the migration splitter")
		}
	}
	return nil
}
