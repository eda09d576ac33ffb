package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders batch rows as CSV string.
func RenderCSV(rows []BatchRow) string {
	var sb strings.Builder

	// Header
	sb.WriteString("batch_id,policy_id,created_at,run_count,bust_count,bust_rate,")
	sb.WriteString("avg_final_bankroll,median_final_bankroll,stddev_final_bankroll,")
	sb.WriteString("p10_final_bankroll,p90_final_bankroll,best_final_bankroll,worst_final_bankroll\n")

	// Rows
	for _, b := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%d,%d,%d,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f\n",
			b.BatchID,
			b.PolicyID,
			b.CreatedAt,
			b.RunCount,
			b.BustCount,
			b.BustRate,
			b.AvgFinalBankroll,
			b.MedianFinalBankroll,
			b.StddevFinalBankroll,
			b.P10FinalBankroll,
			b.P90FinalBankroll,
			b.BestFinalBankroll,
			b.WorstFinalBankroll,
		))
	}

	return sb.String()
}
