package output

import (
	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildTestResult() *domain.SimulationResult {
	years := func(balances ...string) []domain.YearRecord {
		out := make([]domain.YearRecord, len(balances))
		for i, b := range balances {
			out[i] = domain.YearRecord{Year: i, MonthsContributed: 12, CumulativeContribution: decimal.NewFromInt(int64(i * 1000)), EndingBalance: dec(b)}
		}
		out[0].MonthsContributed = 0
		return out
	}
	limit := dec("5000")
	return &domain.SimulationResult{
		RunID: "01FIXTURE",
		Parameters: domain.SimulationParameters{
			GrowthRatePercent:     dec("7"),
			MonthlyContribution:   dec("83.33"),
			NumberOfYears:         2,
			ContributionLimit:     &limit,
			WithdrawalRatePercent: dec("4"),
		},
		Providers: []domain.ProviderResult{
			{
				Name: "A", EffectiveExpenseRatio: dec("0.38"),
				Years: years("0", "1010", "2030.5"), FinalBalance: dec("2030.5"),
				Withdrawal: domain.WithdrawalBreakdown{GrossMonthly: dec("6.77"), AfterBrokerageFees: dec("6.7"), AfterWithdrawalFees: dec("6.5"), AfterTax: dec("6.4")},
			},
			{
				Name: "B & Co", EffectiveExpenseRatio: dec("0.2"),
				Years: years("0", "1015", "2040"), FinalBalance: dec("2040"),
				Withdrawal: domain.WithdrawalBreakdown{GrossMonthly: dec("6.8"), AfterBrokerageFees: dec("6.75"), AfterWithdrawalFees: dec("6.75"), AfterTax: dec("6.6")},
			},
		},
		TotalContribution: dec("2000"),
	}
}
