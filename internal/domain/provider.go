package domain

import (
	"github.com/shopspring/decimal"
)

// FeeTier is one step of a trade-amount fee schedule.
// The fee for an amount matched by this tier is Flat + amount*RatePercent/100,
// clamped to [Min, Max] when those bounds are present.
type FeeTier struct {
	UpTo        *decimal.Decimal `yaml:"up_to,omitempty" json:"up_to,omitempty"` // inclusive; nil means unbounded
	Flat        decimal.Decimal  `yaml:"flat,omitempty" json:"flat,omitempty"`
	RatePercent decimal.Decimal  `yaml:"rate_percent,omitempty" json:"rate_percent,omitempty"`
	Min         *decimal.Decimal `yaml:"min,omitempty" json:"min,omitempty"`
	Max         *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
}

// FeeScheduleConfig describes a brokerage or withdrawal fee as ordered tiers.
// The first tier whose UpTo is >= the amount applies. An empty schedule charges nothing.
type FeeScheduleConfig struct {
	Preset string    `yaml:"preset,omitempty" json:"preset,omitempty"`
	Tiers  []FeeTier `yaml:"tiers,omitempty" json:"tiers,omitempty"`
}

// IsZero reports whether the schedule has neither tiers nor a preset.
func (fs FeeScheduleConfig) IsZero() bool {
	return fs.Preset == "" && len(fs.Tiers) == 0
}

// Fund is an investment fund with its annual expense ratio (percent, e.g. 0.38).
type Fund struct {
	Name         string          `yaml:"name" json:"name"`
	ExpenseRatio decimal.Decimal `yaml:"expense_ratio" json:"expense_ratio"`
}

// Holding is a fund plus the share (0-100) of each contribution routed to it.
type Holding struct {
	Fund       Fund            `yaml:"fund" json:"fund"`
	Percentage decimal.Decimal `yaml:"percentage" json:"percentage"`
}

// Provider is a broker offering the account, identified by Name.
// Either ExpenseRatio or Portfolio should be set; when both are present the
// portfolio wins.
type Provider struct {
	Name          string            `yaml:"name" json:"name"`
	Brokerage     FeeScheduleConfig `yaml:"brokerage" json:"brokerage"`
	WithdrawalFee FeeScheduleConfig `yaml:"withdrawal_fee,omitempty" json:"withdrawal_fee,omitempty"`
	ExpenseRatio  *decimal.Decimal  `yaml:"expense_ratio,omitempty" json:"expense_ratio,omitempty"`
	Portfolio     []Holding         `yaml:"portfolio,omitempty" json:"portfolio,omitempty"`
}

// HasPortfolio reports whether contributions are split across several funds.
func (p Provider) HasPortfolio() bool {
	return len(p.Portfolio) > 0
}

// PortfolioPercentageTotal sums the holding percentages.
func (p Provider) PortfolioPercentageTotal() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Portfolio {
		total = total.Add(h.Percentage)
	}
	return total
}

// ProviderNames returns the display names in order.
func ProviderNames(providers []Provider) []string {
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name
	}
	return names
}
