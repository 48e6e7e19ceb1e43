package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// Preset names for the built-in brokerage schedules.
const (
	PresetBourseDirect = "bourse-direct"
	PresetBoursorama   = "boursorama"
	PresetSaxo         = "saxo"
)

func dp(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func flat(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// PEA brokerage schedules as published by each broker.
var presetSchedules = map[string]domain.FeeScheduleConfig{
	PresetBourseDirect: {Tiers: []domain.FeeTier{
		{UpTo: dp(198), RatePercent: flat(0.5)},
		{UpTo: dp(500), Flat: flat(0.99)},
		{UpTo: dp(1000), Flat: flat(1.9)},
		{UpTo: dp(2000), Flat: flat(2.9)},
		{UpTo: dp(4400), Flat: flat(3.8)},
		{RatePercent: flat(0.09)},
	}},
	PresetBoursorama: {Tiers: []domain.FeeTier{
		{UpTo: dp(398), RatePercent: flat(0.5)},
		{UpTo: dp(500), Flat: flat(1.99)},
		{RatePercent: flat(0.5)},
	}},
	PresetSaxo: {Tiers: []domain.FeeTier{
		{UpTo: dp(1000), RatePercent: flat(0.5), Max: dp(2.5)},
		{UpTo: dp(5000), Flat: flat(5)},
		{UpTo: dp(7500), Flat: flat(7.5)},
		{UpTo: dp(10000), Flat: flat(10)},
		{RatePercent: flat(0.1)},
	}},
}

// AmundiMSCIWorld is the default world-index ETF held in the built-in providers.
var AmundiMSCIWorld = domain.Fund{Name: "Amundi MSCI World", ExpenseRatio: flat(0.38)}

// LookupSchedule returns the tiers of a named preset.
func LookupSchedule(name string) (domain.FeeScheduleConfig, error) {
	cfg, ok := presetSchedules[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.FeeScheduleConfig{}, fmt.Errorf("%w: unknown fee preset %q (known: %s)",
			ErrInvalidParameter, name, strings.Join(PresetNames(), ", "))
	}
	return cfg, nil
}

// PresetNames lists the built-in schedules in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presetSchedules))
	for name := range presetSchedules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltInProviders returns the default comparison: each broker holding the
// Amundi MSCI World fund.
func BuiltInProviders() []domain.Provider {
	ratio := AmundiMSCIWorld.ExpenseRatio
	return []domain.Provider{
		{Name: "Bourse Direct", Brokerage: domain.FeeScheduleConfig{Preset: PresetBourseDirect}, ExpenseRatio: &ratio},
		{Name: "Boursorama", Brokerage: domain.FeeScheduleConfig{Preset: PresetBoursorama}, ExpenseRatio: &ratio},
		{Name: "Saxo", Brokerage: domain.FeeScheduleConfig{Preset: PresetSaxo}, ExpenseRatio: &ratio},
	}
}
