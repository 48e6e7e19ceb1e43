package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

var cent = decimal.NewFromFloat(0.01)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

// assertNear fails unless got is within one cent of want.
func assertNear(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	w := d(want)
	assert.True(t, got.Sub(w).Abs().LessThanOrEqual(cent),
		append([]interface{}{"expected %s, got %s", w.StringFixed(2), got.StringFixed(2)}, msgAndArgs...)...)
}

// referenceParams is the default plan from the original comparison scripts.
func referenceParams() domain.SimulationParameters {
	return domain.SimulationParameters{
		GrowthRatePercent:     d("7"),
		StartingValue:         decimal.Zero,
		MonthlyContribution:   d("833"),
		NumberOfYears:         15,
		ContributionLimit:     ptr("150000"),
		WithdrawalRatePercent: d("4"),
	}
}
