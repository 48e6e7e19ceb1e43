package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationParameters describes the contribution plan shared by every provider.
type SimulationParameters struct {
	GrowthRatePercent     decimal.Decimal  `yaml:"growth_rate_percent" json:"growth_rate_percent"`
	StartingValue         decimal.Decimal  `yaml:"starting_value" json:"starting_value"`
	MonthlyContribution   decimal.Decimal  `yaml:"monthly_contribution" json:"monthly_contribution"`
	NumberOfYears         int              `yaml:"number_of_years" json:"number_of_years"`
	ExpenseRatioOverride  *decimal.Decimal `yaml:"expense_ratio_override,omitempty" json:"expense_ratio_override,omitempty"`
	ContributionLimit     *decimal.Decimal `yaml:"contribution_limit,omitempty" json:"contribution_limit,omitempty"`
	WithdrawalRatePercent decimal.Decimal  `yaml:"withdrawal_rate_percent" json:"withdrawal_rate_percent"`
	// TaxRatePercent applies to the gains share of each withdrawal. Nil means DefaultTaxRatePercent.
	TaxRatePercent        *decimal.Decimal `yaml:"tax_rate_percent,omitempty" json:"tax_rate_percent,omitempty"`
}

// DefaultTaxRatePercent is the flat social levy charged on gains at withdrawal.
var DefaultTaxRatePercent = decimal.NewFromFloat(17.2)

// EffectiveTaxRate returns the configured tax rate or the default.
func (sp SimulationParameters) EffectiveTaxRate() decimal.Decimal {
	if sp.TaxRatePercent != nil {
		return *sp.TaxRatePercent
	}
	return DefaultTaxRatePercent
}

// YearRecord is a provider's state at the end of a simulated year.
// Year 0 is the initial state.
type YearRecord struct {
	Year                   int             `json:"year"`
	MonthsContributed      int             `json:"months_contributed"`
	CumulativeContribution decimal.Decimal `json:"cumulative_contribution"`
	EndingBalance          decimal.Decimal `json:"ending_balance"`
}

// WithdrawalBreakdown is the monthly income available from a final balance,
// after each deduction stage.
type WithdrawalBreakdown struct {
	GrossMonthly        decimal.Decimal `json:"gross_monthly"`
	AfterBrokerageFees  decimal.Decimal `json:"after_brokerage_fees"`
	AfterWithdrawalFees decimal.Decimal `json:"after_withdrawal_fees"`
	AfterTax            decimal.Decimal `json:"after_tax"`
}

// Stages returns the breakdown in deduction order.
func (wb WithdrawalBreakdown) Stages() []decimal.Decimal {
	return []decimal.Decimal{wb.GrossMonthly, wb.AfterBrokerageFees, wb.AfterWithdrawalFees, wb.AfterTax}
}

// ProviderResult holds one provider's accumulation table and withdrawal figures.
type ProviderResult struct {
	Name                  string              `json:"name"`
	EffectiveExpenseRatio decimal.Decimal     `json:"effective_expense_ratio"`
	Years                 []YearRecord        `json:"years"`
	FinalBalance          decimal.Decimal     `json:"final_balance"`
	Withdrawal            WithdrawalBreakdown `json:"withdrawal"`
}

// SimulationResult is the complete output of one simulation run.
type SimulationResult struct {
	RunID             string               `json:"run_id"`
	Parameters        SimulationParameters `json:"parameters"`
	Providers         []ProviderResult     `json:"providers"`
	TotalContribution decimal.Decimal      `json:"total_contribution"`
}

// ProviderNames returns provider names in result order.
func (sr *SimulationResult) ProviderNames() []string {
	names := make([]string, len(sr.Providers))
	for i, p := range sr.Providers {
		names[i] = p.Name
	}
	return names
}

// Provider looks up a provider result by name.
func (sr *SimulationResult) Provider(name string) (ProviderResult, bool) {
	for _, p := range sr.Providers {
		if p.Name == name {
			return p, true
		}
	}
	return ProviderResult{}, false
}
