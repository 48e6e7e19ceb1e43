package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
	money "github.com/peasim/brokerage-simulator/pkg/decimal"
)

// ProviderProjection is one provider's accumulation output.
type ProviderProjection struct {
	Name         string
	ExpenseRatio decimal.Decimal
	Years        []domain.YearRecord
}

// Final returns the last simulated year.
func (pp ProviderProjection) Final() domain.YearRecord {
	return pp.Years[len(pp.Years)-1]
}

// providerState is what a provider carries from one year to the next.
type providerState struct {
	policy      FeePolicy
	expense     decimal.Decimal
	monthlyRate decimal.Decimal
	monthly     decimal.Decimal
}

// advance derives year plan.Year from the prior year's record alone.
func (ps providerState) advance(prior domain.YearRecord, plan YearPlan) (domain.YearRecord, error) {
	net := ps.monthly.Sub(ps.policy.BrokerFee(ps.monthly))

	afterContributions, err := Compound(ps.monthlyRate, plan.MonthsContributing, net, prior.EndingBalance)
	if err != nil {
		return domain.YearRecord{}, fmt.Errorf("year %d contributing months: %w", plan.Year, err)
	}
	afterYear, err := Compound(ps.monthlyRate, MonthsPerYear-plan.MonthsContributing, decimal.Zero, afterContributions)
	if err != nil {
		return domain.YearRecord{}, fmt.Errorf("year %d remaining months: %w", plan.Year, err)
	}

	ending := money.NewMoneyFromDecimal(afterYear).LessPercent(ps.expense).Decimal
	return domain.YearRecord{
		Year:                   plan.Year,
		MonthsContributed:      plan.MonthsContributing,
		CumulativeContribution: plan.CumulativeContribution,
		EndingBalance:          ending,
	}, nil
}

// ProjectProvider folds a provider's balance through every planned year,
// starting from year 0 at the plan's starting value.
func ProjectProvider(ctx context.Context, params domain.SimulationParameters, plans []YearPlan, name string, policy FeePolicy) (ProviderProjection, error) {
	state := providerState{
		policy:      policy,
		expense:     EffectiveExpenseRatio(params.ExpenseRatioOverride, policy),
		monthlyRate: MonthlyRate(params.GrowthRatePercent),
		monthly:     params.MonthlyContribution,
	}

	years := make([]domain.YearRecord, 0, len(plans)+1)
	years = append(years, domain.YearRecord{Year: 0, CumulativeContribution: decimal.Zero, EndingBalance: params.StartingValue})
	for _, plan := range plans {
		if err := ctx.Err(); err != nil {
			return ProviderProjection{}, err
		}
		next, err := state.advance(years[len(years)-1], plan)
		if err != nil {
			return ProviderProjection{}, fmt.Errorf("provider %q: %w", name, err)
		}
		years = append(years, next)
	}
	return ProviderProjection{Name: name, ExpenseRatio: state.expense, Years: years}, nil
}
