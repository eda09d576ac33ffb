package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Batch Simulation Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Batches: %d | Policies: %d\n\n", r.BatchCount, r.PolicyCount))

	// Data Summary
	sb.WriteString("## Data Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Batches | %d |\n", r.DataSummary.TotalBatches))
	sb.WriteString(fmt.Sprintf("| Total Runs | %d |\n", r.DataSummary.TotalRuns))
	sb.WriteString(fmt.Sprintf("| Total Busts | %d |\n", r.DataSummary.TotalBusts))
	sb.WriteString(fmt.Sprintf("| Date Range Start (ms) | %d |\n", r.DataSummary.DateRangeStart))
	sb.WriteString(fmt.Sprintf("| Date Range End (ms) | %d |\n", r.DataSummary.DateRangeEnd))
	sb.WriteString("\n")

	// Batch Results
	sb.WriteString("## Batch Results\n\n")
	if len(r.BatchRows) > 0 {
		sb.WriteString("| Batch | Policy | Runs | Busts | BustRate | Avg | Median | Stddev | P10 | P90 | Best | Worst |\n")
		sb.WriteString("|-------|--------|------|-------|----------|-----|--------|--------|-----|-----|------|-------|\n")
		for _, b := range r.BatchRows {
			sb.WriteString(fmt.Sprintf("| %s | %s | %d | %d | %.4f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
				b.BatchID, b.PolicyID, b.RunCount, b.BustCount, b.BustRate,
				b.AvgFinalBankroll, b.MedianFinalBankroll, b.StddevFinalBankroll,
				b.P10FinalBankroll, b.P90FinalBankroll,
				b.BestFinalBankroll, b.WorstFinalBankroll))
		}
	} else {
		sb.WriteString("No batch results available.\n")
	}
	sb.WriteString("\n")

	// Policy Comparison
	sb.WriteString("## Policy Comparison\n\n")
	if len(r.PolicyComparison) > 0 {
		sb.WriteString("| Policy | Batches | Runs | BustRate | Avg Final |\n")
		sb.WriteString("|--------|---------|------|----------|----------|\n")
		for _, p := range r.PolicyComparison {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.4f | %.2f |\n",
				p.PolicyID, p.BatchCount, p.TotalRuns, p.BustRate, p.AvgFinalBankroll))
		}
	} else {
		sb.WriteString("No policy comparison available.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
