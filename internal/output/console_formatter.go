package output

import (
	"bytes"
	"fmt"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PEA BROKERAGE SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Total Contribution: %s over %d years\n", FormatCurrency(results.TotalContribution), results.Parameters.NumberOfYears)
	fmt.Fprintln(&buf)
	for _, p := range RankProviders(results) {
		fmt.Fprintf(&buf, "%s: Final=%s Gross=%s AfterTax=%s\n",
			p.Name,
			FormatCurrency(p.FinalBalance),
			FormatCurrency(p.Withdrawal.GrossMonthly),
			FormatCurrency(p.Withdrawal.AfterTax),
		)
	}
	writeRecommendation(&buf, AnalyzeProviders(results))
	return buf.Bytes(), nil
}
