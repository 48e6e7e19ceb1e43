package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// MonthsOfContributionAllowed returns how many monthly contributions still fit
// under limit, between 0 and 12. A nil limit never binds.
func MonthsOfContributionAllowed(limit *decimal.Decimal, contributedSoFar, monthlyContribution decimal.Decimal) int {
	if limit == nil {
		return MonthsPerYear
	}
	if !monthlyContribution.IsPositive() {
		return 0
	}
	remaining := limit.Sub(contributedSoFar)
	if !remaining.IsPositive() {
		return 0
	}
	// integer quotient, truncated toward zero (floor for positive values)
	months, _ := remaining.QuoRem(monthlyContribution, 0)
	if months.GreaterThanOrEqual(twelve) {
		return MonthsPerYear
	}
	return int(months.IntPart())
}

// YearPlan is the plan-level contribution state for one simulated year. It is
// shared by every provider.
type YearPlan struct {
	Year                   int
	MonthsContributing     int
	CumulativeContribution decimal.Decimal
}

// ContributionSchedule lays out years 1..NumberOfYears. The running total is
// advanced once per year by the months actually contributed.
func ContributionSchedule(params domain.SimulationParameters) []YearPlan {
	plans := make([]YearPlan, 0, params.NumberOfYears)
	total := decimal.Zero
	for year := 1; year <= params.NumberOfYears; year++ {
		months := MonthsOfContributionAllowed(params.ContributionLimit, total, params.MonthlyContribution)
		total = total.Add(params.MonthlyContribution.Mul(decimal.NewFromInt(int64(months))))
		plans = append(plans, YearPlan{
			Year:                   year,
			MonthsContributing:     months,
			CumulativeContribution: total,
		})
	}
	return plans
}
