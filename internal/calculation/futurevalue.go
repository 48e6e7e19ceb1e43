package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	money "github.com/peasim/brokerage-simulator/pkg/decimal"
)

// PaymentTiming says whether periodic payments land at the start or end of each period.
type PaymentTiming int

const (
	PaymentAtEnd   PaymentTiming = 0
	PaymentAtStart PaymentTiming = 1
)

// MonthsPerYear is the number of compounding periods per simulated year.
const MonthsPerYear = 12

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(MonthsPerYear)
)

// FutureValue is the spreadsheet FV function rounded to cents.
//
// The sign convention treats payments and present value as outflows, so a
// growing balance comes back negative; callers negate the result.
//
//	rate == 0: -(pv + pmt*n)
//	otherwise: pmt*(1+rate*timing)*(1-(1+rate)^n)/rate - pv*(1+rate)^n
func FutureValue(rate decimal.Decimal, periods int, payment, presentValue decimal.Decimal, timing PaymentTiming) (decimal.Decimal, error) {
	if periods < 0 {
		return decimal.Zero, fmt.Errorf("%w: number of periods cannot be negative, got %d", ErrInvalidParameter, periods)
	}
	n := decimal.NewFromInt(int64(periods))
	if rate.IsZero() {
		return money.NewMoneyFromDecimal(presentValue.Add(payment.Mul(n)).Neg()).Round().Decimal, nil
	}

	base := one.Add(rate)
	if !base.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: 1+rate must be positive, got %s", ErrArithmeticDomain, base.String())
	}
	pow := base.Pow(n)

	timingFactor := one.Add(rate.Mul(decimal.NewFromInt(int64(timing))))
	annuity := payment.Mul(timingFactor).Mul(one.Sub(pow)).Div(rate)
	fv := annuity.Sub(presentValue.Mul(pow))
	return money.NewMoneyFromDecimal(fv).Round().Decimal, nil
}

// Compound grows a balance over periods with a constant payment and returns it
// with a positive sign.
func Compound(rate decimal.Decimal, periods int, payment, balance decimal.Decimal) (decimal.Decimal, error) {
	fv, err := FutureValue(rate, periods, payment, balance, PaymentAtStart)
	if err != nil {
		return decimal.Zero, err
	}
	return fv.Neg(), nil
}

// MonthlyRate converts an annual growth percentage to a monthly periodic rate.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(hundred).Div(twelve)
}
