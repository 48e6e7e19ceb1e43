package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// MaxYears bounds the projection horizon.
const MaxYears = 100

// minGrowthRatePercent is the annual rate at which 1+monthlyRate reaches zero.
var minGrowthRatePercent = decimal.NewFromInt(-1200)

// ValidateParameters rejects plans that cannot be simulated.
func ValidateParameters(p domain.SimulationParameters) error {
	if !p.MonthlyContribution.IsPositive() {
		return fmt.Errorf("%w: monthly contribution must be positive, got %s", ErrInvalidParameter, p.MonthlyContribution)
	}
	if p.NumberOfYears < 1 || p.NumberOfYears > MaxYears {
		return fmt.Errorf("%w: number of years must be between 1 and %d, got %d", ErrInvalidParameter, MaxYears, p.NumberOfYears)
	}
	if p.StartingValue.IsNegative() {
		return fmt.Errorf("%w: starting value cannot be negative, got %s", ErrInvalidParameter, p.StartingValue)
	}
	if p.GrowthRatePercent.LessThanOrEqual(minGrowthRatePercent) {
		return fmt.Errorf("%w: growth rate %s%% makes the monthly growth factor non-positive", ErrArithmeticDomain, p.GrowthRatePercent)
	}
	if p.ExpenseRatioOverride != nil && p.ExpenseRatioOverride.IsNegative() {
		return fmt.Errorf("%w: expense ratio override cannot be negative, got %s", ErrInvalidParameter, p.ExpenseRatioOverride)
	}
	if p.ContributionLimit != nil && p.ContributionLimit.IsNegative() {
		return fmt.Errorf("%w: contribution limit cannot be negative, got %s", ErrInvalidParameter, p.ContributionLimit)
	}
	if p.WithdrawalRatePercent.IsNegative() {
		return fmt.Errorf("%w: withdrawal rate cannot be negative, got %s", ErrInvalidParameter, p.WithdrawalRatePercent)
	}
	if p.TaxRatePercent != nil && (p.TaxRatePercent.IsNegative() || p.TaxRatePercent.GreaterThan(hundred)) {
		return fmt.Errorf("%w: tax rate must be between 0 and 100, got %s", ErrInvalidParameter, p.TaxRatePercent)
	}
	return nil
}

// ValidateProviders checks names, portfolios and fee schedules.
func ValidateProviders(providers []domain.Provider) error {
	if len(providers) == 0 {
		return fmt.Errorf("%w: at least one provider is required", ErrInvalidParameter)
	}
	seen := make(map[string]bool, len(providers))
	for i, p := range providers {
		if p.Name == "" {
			return fmt.Errorf("%w: provider %d has no name", ErrInvalidParameter, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate provider name %q", ErrInvalidParameter, p.Name)
		}
		seen[p.Name] = true

		if err := validateProvider(p); err != nil {
			return fmt.Errorf("provider %q: %w", p.Name, err)
		}
	}
	return nil
}

func validateProvider(p domain.Provider) error {
	if p.ExpenseRatio == nil && !p.HasPortfolio() {
		return fmt.Errorf("%w: expense ratio or portfolio is required", ErrInvalidParameter)
	}
	if p.ExpenseRatio != nil && p.ExpenseRatio.IsNegative() {
		return fmt.Errorf("%w: expense ratio cannot be negative", ErrInvalidParameter)
	}
	if p.HasPortfolio() {
		for _, h := range p.Portfolio {
			if !h.Percentage.IsPositive() {
				return fmt.Errorf("%w: fund %q percentage must be positive", ErrInvalidParameter, h.Fund.Name)
			}
			if h.Fund.ExpenseRatio.IsNegative() {
				return fmt.Errorf("%w: fund %q expense ratio cannot be negative", ErrInvalidParameter, h.Fund.Name)
			}
		}
		if total := p.PortfolioPercentageTotal(); !total.Equal(hundred) {
			return fmt.Errorf("%w: portfolio percentages must sum to 100, got %s", ErrInvalidParameter, total)
		}
	}
	if err := validateSchedule(p.Brokerage); err != nil {
		return fmt.Errorf("brokerage: %w", err)
	}
	if err := validateSchedule(p.WithdrawalFee); err != nil {
		return fmt.Errorf("withdrawal fee: %w", err)
	}
	return nil
}

func validateSchedule(fs domain.FeeScheduleConfig) error {
	if fs.Preset != "" {
		if len(fs.Tiers) > 0 {
			return fmt.Errorf("%w: specify either preset or tiers, not both", ErrInvalidParameter)
		}
		_, err := LookupSchedule(fs.Preset)
		return err
	}
	var prev *decimal.Decimal
	for i, t := range fs.Tiers {
		if t.Flat.IsNegative() || t.RatePercent.IsNegative() {
			return fmt.Errorf("%w: tier %d has a negative fee", ErrInvalidParameter, i)
		}
		if t.Min != nil && t.Max != nil && t.Min.GreaterThan(*t.Max) {
			return fmt.Errorf("%w: tier %d min exceeds max", ErrInvalidParameter, i)
		}
		if t.UpTo == nil {
			if i != len(fs.Tiers)-1 {
				return fmt.Errorf("%w: only the last tier may be unbounded", ErrInvalidParameter)
			}
			continue
		}
		if prev != nil && !t.UpTo.GreaterThan(*prev) {
			return fmt.Errorf("%w: tier bounds must increase, tier %d up_to %s", ErrInvalidParameter, i, t.UpTo)
		}
		prev = t.UpTo
	}
	return nil
}
