package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// DefaultAssumptions lists the modeling rules every run shares.
var DefaultAssumptions = []string{
	"Contributions are invested at the start of each month, one trade per fund",
	"Growth compounds monthly at the annual rate divided by twelve",
	"Fund expense ratios are charged once at the end of each year",
	"Tax applies only to the gains share of each withdrawal",
}

// GenerateAssumptions describes the plan behind a run, followed by DefaultAssumptions.
func GenerateAssumptions(params *domain.SimulationParameters) []string {
	limit := "no contribution limit"
	if params.ContributionLimit != nil {
		limit = "contributions stop at " + FormatCurrency(*params.ContributionLimit)
	}
	out := []string{
		fmt.Sprintf("Growth: %s annually", FormatPercentage(params.GrowthRatePercent)),
		fmt.Sprintf("Contribution: %s monthly for %d years, %s", FormatCurrency(params.MonthlyContribution), params.NumberOfYears, limit),
		fmt.Sprintf("Starting value: %s", FormatCurrency(params.StartingValue)),
		fmt.Sprintf("Withdrawal rate: %s annually, tax on gains %s", FormatPercentage(params.WithdrawalRatePercent), FormatPercentage(params.EffectiveTaxRate())),
	}
	if params.ExpenseRatioOverride != nil {
		out = append(out, fmt.Sprintf("Expense ratio overridden to %s for every provider", FormatPercentage(*params.ExpenseRatioOverride)))
	}
	return append(out, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
