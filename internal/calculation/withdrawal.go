package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
	money "github.com/peasim/brokerage-simulator/pkg/decimal"
)

// ComputeWithdrawal derives the monthly income a final balance supports at
// withdrawalRatePercent per year, after brokerage, withdrawal fees and tax on
// the gains share. Tax never applies to returned principal.
func ComputeWithdrawal(totalContribution, finalBalance, withdrawalRatePercent, taxRatePercent decimal.Decimal, policy FeePolicy) (domain.WithdrawalBreakdown, error) {
	if finalBalance.IsZero() {
		return domain.WithdrawalBreakdown{}, fmt.Errorf("%w: final balance is zero, gains share is undefined", ErrDivideByZero)
	}

	gross := money.NewMoneyFromDecimal(finalBalance).Percent(withdrawalRatePercent).Monthly().Decimal
	afterBrokerage := gross.Sub(policy.BrokerFee(gross))
	afterWithdrawal := afterBrokerage.Sub(policy.WithdrawalFee(afterBrokerage))

	// fees larger than the gross amount leave nothing to tax
	afterTax := afterWithdrawal
	if afterWithdrawal.IsPositive() {
		levy := GainsProportion(totalContribution, finalBalance).Mul(taxRatePercent)
		afterTax = money.NewMoneyFromDecimal(afterWithdrawal).LessPercent(levy).Decimal
	}

	return domain.WithdrawalBreakdown{
		GrossMonthly:        gross,
		AfterBrokerageFees:  afterBrokerage,
		AfterWithdrawalFees: afterWithdrawal,
		AfterTax:            afterTax,
	}, nil
}

// GainsProportion is the share of finalBalance that is growth rather than
// contributions, clamped to [0, 1]. finalBalance must be non-zero.
func GainsProportion(totalContribution, finalBalance decimal.Decimal) decimal.Decimal {
	p := one.Sub(totalContribution.Div(finalBalance))
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(one) {
		return one
	}
	return p
}
