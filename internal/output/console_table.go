package output

import (
	"bytes"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// writeConsoleTable aligns a table in columns, rendering cells with cell.
func writeConsoleTable(w io.Writer, t domain.Table, cell func(decimal.Decimal) string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := io.WriteString(tw, strings.Join(t.Header, "\t")+"\t\n"); err != nil {
		return err
	}
	line := make([]string, 0, len(t.Header))
	for _, r := range t.Rows {
		line = append(line[:0], r.Label)
		for _, v := range r.Values {
			line = append(line, cell(v))
		}
		if _, err := io.WriteString(tw, strings.Join(line, "\t")+"\t\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// TableConsole renders a table for the terminal with plain two-decimal cells.
func TableConsole(t domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeConsoleTable(&buf, t, func(v decimal.Decimal) string { return v.StringFixed(2) }); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
