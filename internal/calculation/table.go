package calculation

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// Withdrawal table row labels, in deduction order after the gross line.
const (
	LabelInitialPortfolio    = "Initial Portfolio Total"
	LabelAfterBrokerageFees  = "After brokerage fees"
	LabelAfterWithdrawalFees = "After withdrawal fees"
	LabelAfterTax            = "After tax"
)

// GrossMonthlyLabel names the first withdrawal stage, e.g. "Gross Monthly at 4%".
func GrossMonthlyLabel(withdrawalRatePercent decimal.Decimal) string {
	return fmt.Sprintf("Gross Monthly at %s%%", withdrawalRatePercent.String())
}

// Transpose swaps rows and columns. Rows shorter than the first are padded
// with the zero value.
func Transpose[T any](m [][]T) [][]T {
	if len(m) == 0 {
		return nil
	}
	out := make([][]T, len(m[0]))
	for c := range out {
		out[c] = make([]T, len(m))
		for r := range m {
			if c < len(m[r]) {
				out[c][r] = m[r][c]
			}
		}
	}
	return out
}

// AccumulationTable lays the projection out one row per year:
// Year, CumulativeContribution, then each provider's ending balance.
func AccumulationTable(res *domain.SimulationResult) domain.Table {
	header := append([]string{"Year", "CumulativeContribution"}, res.ProviderNames()...)
	table := domain.Table{Header: header}
	if len(res.Providers) == 0 {
		return table
	}
	for i, rec := range res.Providers[0].Years {
		values := make([]decimal.Decimal, 0, len(res.Providers)+1)
		values = append(values, rec.CumulativeContribution)
		for _, p := range res.Providers {
			values = append(values, p.Years[i].EndingBalance)
		}
		table.Rows = append(table.Rows, domain.Row{Label: strconv.Itoa(rec.Year), Values: values})
	}
	return table
}

// WithdrawalTable turns per-provider breakdowns into one row per stage.
func WithdrawalTable(res *domain.SimulationResult) domain.Table {
	labels := []string{
		LabelInitialPortfolio,
		GrossMonthlyLabel(res.Parameters.WithdrawalRatePercent),
		LabelAfterBrokerageFees,
		LabelAfterWithdrawalFees,
		LabelAfterTax,
	}

	columns := make([][]decimal.Decimal, len(res.Providers))
	for i, p := range res.Providers {
		columns[i] = append([]decimal.Decimal{p.FinalBalance}, p.Withdrawal.Stages()...)
	}
	rows := Transpose(columns)

	table := domain.Table{Header: append([]string{""}, res.ProviderNames()...)}
	for i, label := range labels {
		var values []decimal.Decimal
		if i < len(rows) {
			values = rows[i]
		}
		table.Rows = append(table.Rows, domain.Row{Label: label, Values: values})
	}
	return table
}

// MaxFeeTableRows bounds the number of trade amounts in a fee comparison table.
const MaxFeeTableRows = 100000

// FeeComparisonTable lists each provider's brokerage fee for trade amounts
// from 0 to maxAmount in increments of step.
func FeeComparisonTable(providers []domain.Provider, maxAmount, step decimal.Decimal) (domain.Table, error) {
	if !step.IsPositive() {
		return domain.Table{}, fmt.Errorf("%w: step must be positive, got %s", ErrInvalidParameter, step)
	}
	if maxAmount.IsNegative() {
		return domain.Table{}, fmt.Errorf("%w: max amount cannot be negative, got %s", ErrInvalidParameter, maxAmount)
	}
	if rows := maxAmount.Div(step).IntPart() + 1; rows > MaxFeeTableRows {
		return domain.Table{}, fmt.Errorf("%w: %s/%s gives %d rows, more than %d", ErrInvalidParameter, maxAmount, step, rows, MaxFeeTableRows)
	}

	policies := make([]FeePolicy, len(providers))
	for i, p := range providers {
		policy, err := NewFeePolicy(p)
		if err != nil {
			return domain.Table{}, err
		}
		policies[i] = policy
	}

	table := domain.Table{Header: append([]string{"Amount"}, domain.ProviderNames(providers)...)}
	for amount := decimal.Zero; amount.LessThanOrEqual(maxAmount); amount = amount.Add(step) {
		values := make([]decimal.Decimal, len(policies))
		for i, policy := range policies {
			values[i] = policy.BrokerFee(amount)
		}
		table.Rows = append(table.Rows, domain.Row{Label: amount.String(), Values: values})
	}
	return table, nil
}
