package output

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// Recommendation encapsulates the selection result of the best provider.
type Recommendation struct {
	ProviderName     string
	MonthlyAfterTax  decimal.Decimal
	RunnerUp         string
	MonthlyAdvantage decimal.Decimal // over the runner-up
	PercentageChange decimal.Decimal
}

// RankProviders orders providers by monthly income after tax, highest first.
// Ties keep result order.
func RankProviders(results *domain.SimulationResult) []domain.ProviderResult {
	ranked := append([]domain.ProviderResult(nil), results.Providers...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Withdrawal.AfterTax.GreaterThan(ranked[j].Withdrawal.AfterTax)
	})
	return ranked
}

// AnalyzeProviders picks the provider leaving the most monthly income after tax
// and measures its lead over the next best.
func AnalyzeProviders(results *domain.SimulationResult) Recommendation {
	ranked := RankProviders(results)
	if len(ranked) == 0 {
		return Recommendation{}
	}
	best := ranked[0]
	rec := Recommendation{ProviderName: best.Name, MonthlyAfterTax: best.Withdrawal.AfterTax}
	if len(ranked) < 2 {
		return rec
	}
	next := ranked[1]
	rec.RunnerUp = next.Name
	rec.MonthlyAdvantage = best.Withdrawal.AfterTax.Sub(next.Withdrawal.AfterTax)
	if !next.Withdrawal.AfterTax.IsZero() {
		rec.PercentageChange = rec.MonthlyAdvantage.Div(next.Withdrawal.AfterTax.Abs()).Mul(decimalHundred)
	}
	return rec
}
