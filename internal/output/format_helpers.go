package output

import (
	"github.com/shopspring/decimal"

	pkgdecimal "github.com/peasim/brokerage-simulator/pkg/decimal"
)

// FormatCurrency formats a decimal as euros rounded to cents.
func FormatCurrency(amount decimal.Decimal) string {
	return pkgdecimal.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
