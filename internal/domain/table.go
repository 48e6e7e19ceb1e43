package domain

import "github.com/shopspring/decimal"

// Row is a labelled row of numeric cells.
type Row struct {
	Label  string            `json:"label"`
	Values []decimal.Decimal `json:"values"`
}

// Table is a header plus labelled numeric rows. Header[0] titles the label column.
type Table struct {
	Header []string `json:"header"`
	Rows   []Row    `json:"rows"`
}

// Cells returns the table as strings, numbers fixed to two decimals.
func (t Table) Cells() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, append([]string(nil), t.Header...))
	for _, r := range t.Rows {
		line := make([]string, 0, len(r.Values)+1)
		line = append(line, r.Label)
		for _, v := range r.Values {
			line = append(line, v.StringFixed(2))
		}
		out = append(out, line)
	}
	return out
}
