package decimal

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO code used when displaying amounts.
const DefaultCurrency = money.EUR

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to cents, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(monthsPerYear)}
}

// Percent returns pct percent of the amount (pct is expressed as 0-100).
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{m.Decimal.Mul(pct).Div(hundred)}
}

// LessPercent removes pct percent of the amount from itself.
func (m Money) LessPercent(pct decimal.Decimal) Money {
	return Money{m.Decimal.Sub(m.Percent(pct).Decimal)}
}

// Format renders the amount in DefaultCurrency, e.g. "€1,234.50".
func (m Money) Format() string {
	return m.FormatIn(DefaultCurrency)
}

// FormatIn renders the amount using the display rules of the given ISO currency.
func (m Money) FormatIn(code string) string {
	cur := money.New(0, code).Currency()
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}
