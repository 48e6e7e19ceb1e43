package output

import (
	"bytes"
	"encoding/csv"

	"github.com/peasim/brokerage-simulator/internal/calculation"
	"github.com/peasim/brokerage-simulator/internal/domain"
)

// CSVDetailedExporter writes the accumulation table: one row per year with
// the cumulative contribution and every provider's balance.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.SimulationResult) ([]byte, error) {
	return TableCSV(calculation.AccumulationTable(results))
}

// CSVWithdrawalExporter writes the withdrawal table, one row per deduction stage.
type CSVWithdrawalExporter struct{}

func (c CSVWithdrawalExporter) Name() string { return "withdrawal-csv" }

func (c CSVWithdrawalExporter) Format(results *domain.SimulationResult) ([]byte, error) {
	return TableCSV(calculation.WithdrawalTable(results))
}

// TableCSV renders a table with its header row, cells fixed to two decimals.
func TableCSV(t domain.Table) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(t.Cells()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
