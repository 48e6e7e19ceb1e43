package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// defaultMaxWorkers bounds concurrent provider projections in parallel mode.
const defaultMaxWorkers = 8

// SimulationEngine orchestrates the accumulation and withdrawal phases for
// every provider in a configuration.
type SimulationEngine struct {
	Parallel   bool // project providers concurrently; results are identical to sequential runs
	MaxWorkers int
	Logger     Logger
}

// NewSimulationEngine creates a sequential engine with a no-op logger.
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{
		MaxWorkers: defaultMaxWorkers,
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// Run validates the configuration, projects every provider and computes its
// withdrawal breakdown. Any invalid input fails the whole run.
func (se *SimulationEngine) Run(ctx context.Context, config *domain.Configuration) (*domain.SimulationResult, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: nil configuration", ErrInvalidParameter)
	}
	return se.Simulate(ctx, config.Simulation, config.Providers)
}

// Simulate runs one plan against providers.
func (se *SimulationEngine) Simulate(ctx context.Context, params domain.SimulationParameters, providers []domain.Provider) (*domain.SimulationResult, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}
	if err := ValidateProviders(providers); err != nil {
		return nil, err
	}

	policies := make([]FeePolicy, len(providers))
	for i, p := range providers {
		policy, err := NewFeePolicy(p)
		if err != nil {
			return nil, err
		}
		policies[i] = policy
	}

	runID := runIDFunc()
	se.Logger.Infof("run %s: %d providers over %d years, %s/month at %s%% growth",
		runID, len(providers), params.NumberOfYears, params.MonthlyContribution, params.GrowthRatePercent)

	projections, total, err := se.Accumulate(ctx, params, providers, policies)
	if err != nil {
		return nil, err
	}

	result := &domain.SimulationResult{
		RunID:             runID,
		Parameters:        params,
		Providers:         make([]domain.ProviderResult, len(projections)),
		TotalContribution: total,
	}
	taxRate := params.EffectiveTaxRate()
	for i, proj := range projections {
		final := proj.Final().EndingBalance
		breakdown, err := ComputeWithdrawal(total, final, params.WithdrawalRatePercent, taxRate, policies[i])
		if err != nil {
			return nil, fmt.Errorf("provider %q withdrawal: %w", proj.Name, err)
		}
		se.Logger.Debugf("run %s: %s final balance %s, monthly after tax %s",
			runID, proj.Name, final.StringFixed(2), breakdown.AfterTax.StringFixed(2))

		result.Providers[i] = domain.ProviderResult{
			Name:                  proj.Name,
			EffectiveExpenseRatio: proj.ExpenseRatio,
			Years:                 proj.Years,
			FinalBalance:          final,
			Withdrawal:            breakdown,
		}
	}
	return result, nil
}

// Accumulate projects each provider through the shared contribution schedule.
// Output order follows providers regardless of evaluation order.
func (se *SimulationEngine) Accumulate(ctx context.Context, params domain.SimulationParameters, providers []domain.Provider, policies []FeePolicy) ([]ProviderProjection, decimal.Decimal, error) {
	plans := ContributionSchedule(params)
	se.logSchedule(plans, params.ContributionLimit)

	total := decimal.Zero
	if len(plans) > 0 {
		total = plans[len(plans)-1].CumulativeContribution
	}

	projections := make([]ProviderProjection, len(providers))
	errs := make([]error, len(providers))

	project := func(i int) {
		projections[i], errs[i] = ProjectProvider(ctx, params, plans, providers[i].Name, policies[i])
	}

	if se.Parallel && len(providers) > 1 {
		workers := se.MaxWorkers
		if workers <= 0 {
			workers = defaultMaxWorkers
		}
		var wg sync.WaitGroup
		semaphore := make(chan struct{}, workers)
		for i := range providers {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				semaphore <- struct{}{}
				defer func() { <-semaphore }()
				project(idx)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range providers {
			project(i)
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, decimal.Zero, err
		}
	}
	return projections, total, nil
}

func (se *SimulationEngine) logSchedule(plans []YearPlan, limit *decimal.Decimal) {
	capped := false
	for _, plan := range plans {
		se.Logger.Debugf("year %d: %d contributing months, cumulative %s",
			plan.Year, plan.MonthsContributing, plan.CumulativeContribution.StringFixed(2))
		if limit != nil && !capped && plan.MonthsContributing < MonthsPerYear {
			capped = true
			se.Logger.Infof("contribution limit %s reached in year %d", limit.StringFixed(2), plan.Year)
		}
	}
}
