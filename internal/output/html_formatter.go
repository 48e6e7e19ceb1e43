package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/peasim/brokerage-simulator/internal/calculation"
	"github.com/peasim/brokerage-simulator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with both tables.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		RunID          string
		Recommendation Recommendation
		Assumptions    []string
		Accumulation   [][]string
		Withdrawal     [][]string
	}{
		RunID:          results.RunID,
		Recommendation: AnalyzeProviders(results),
		Assumptions:    GenerateAssumptions(&results.Parameters),
		Accumulation:   calculation.AccumulationTable(results).Cells(),
		Withdrawal:     calculation.WithdrawalTable(results).Cells(),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TableHTML renders a single table as an HTML fragment.
func TableHTML(t domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.ExecuteTemplate(&buf, "table", t.Cells()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
