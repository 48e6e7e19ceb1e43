package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/peasim/brokerage-simulator/internal/calculation"
	"github.com/peasim/brokerage-simulator/internal/domain"
)

// ConsoleVerboseFormatter renders the full report: assumptions, both tables
// in euros and the recommendation.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "PEA BROKERAGE ACCUMULATION AND WITHDRAWAL ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	if results.RunID != "" {
		fmt.Fprintf(&buf, "Run: %s\n", results.RunID)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(&results.Parameters) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "ACCUMULATION")
	fmt.Fprintln(&buf, strings.Repeat("=", 12))
	if err := writeConsoleTable(&buf, calculation.AccumulationTable(results), FormatCurrency); err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "Total contributed: %s\n", FormatCurrency(results.TotalContribution))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "MONTHLY WITHDRAWAL")
	fmt.Fprintln(&buf, strings.Repeat("=", 18))
	if err := writeConsoleTable(&buf, calculation.WithdrawalTable(results), FormatCurrency); err != nil {
		return nil, err
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "EXPENSE RATIOS:")
	for _, p := range results.Providers {
		fmt.Fprintf(&buf, "  %-30s %s\n", p.Name, FormatPercentage(p.EffectiveExpenseRatio))
	}

	writeRecommendation(&buf, AnalyzeProviders(results))
	return buf.Bytes(), nil
}

func writeRecommendation(buf *bytes.Buffer, rec Recommendation) {
	if rec.ProviderName == "" {
		return
	}
	fmt.Fprintln(buf)
	if rec.RunnerUp == "" {
		fmt.Fprintf(buf, "Recommended: %s (%s monthly after tax)\n", rec.ProviderName, FormatCurrency(rec.MonthlyAfterTax))
		return
	}
	fmt.Fprintf(buf, "Recommended: %s (%s monthly after tax, Δ %s / %s vs %s)\n",
		rec.ProviderName, FormatCurrency(rec.MonthlyAfterTax),
		FormatCurrency(rec.MonthlyAdvantage), FormatPercentage(rec.PercentageChange), rec.RunnerUp)
}
