package output

import (
	"bytes"
	"encoding/csv"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per provider).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Provider", "EffectiveExpenseRatio", "TotalContribution", "FinalBalance", "GrossMonthly", "AfterBrokerageFees", "AfterWithdrawalFees", "AfterTax"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range results.Providers {
		row := []string{
			p.Name,
			p.EffectiveExpenseRatio.String(),
			results.TotalContribution.StringFixed(2),
			p.FinalBalance.StringFixed(2),
			p.Withdrawal.GrossMonthly.StringFixed(2),
			p.Withdrawal.AfterBrokerageFees.StringFixed(2),
			p.Withdrawal.AfterWithdrawalFees.StringFixed(2),
			p.Withdrawal.AfterTax.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
