package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/peasim/brokerage-simulator/internal/calculation"
	"github.com/peasim/brokerage-simulator/internal/domain"
)

// MarkdownFormatter renders the report as GitHub-flavoured markdown.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(results *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# PEA Brokerage Comparison")
	fmt.Fprintln(&buf)
	if results.RunID != "" {
		fmt.Fprintf(&buf, "Run `%s`\n\n", results.RunID)
	}

	fmt.Fprintln(&buf, "## Key Assumptions")
	fmt.Fprintln(&buf)
	for _, a := range GenerateAssumptions(&results.Parameters) {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Accumulation")
	fmt.Fprintln(&buf)
	buf.WriteString(MarkdownTable(calculation.AccumulationTable(results)))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Withdrawal")
	fmt.Fprintln(&buf)
	buf.WriteString(MarkdownTable(calculation.WithdrawalTable(results)))

	if rec := AnalyzeProviders(results); rec.ProviderName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "**Recommended:** %s, %s a month after tax", escapeCell(rec.ProviderName), FormatCurrency(rec.MonthlyAfterTax))
		if rec.RunnerUp != "" {
			fmt.Fprintf(&buf, " (%s more than %s)", FormatCurrency(rec.MonthlyAdvantage), escapeCell(rec.RunnerUp))
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes(), nil
}

// MarkdownTable renders a table in pipe syntax with right-aligned numeric columns.
func MarkdownTable(t domain.Table) string {
	var sb strings.Builder
	cells := t.Cells()
	for i, row := range cells {
		sb.WriteString("|")
		for _, c := range row {
			sb.WriteString(" " + escapeCell(c) + " |")
		}
		sb.WriteString("\n")
		if i == 0 && len(row) > 0 {
			sb.WriteString("| --- |")
			for range row[1:] {
				sb.WriteString(" ---: |")
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderTerminal styles markdown for a terminal. An empty style selects the
// glamour style matching the terminal background; width <= 0 keeps glamour's
// default wrapping.
func RenderTerminal(markdown []byte, style string, width int) ([]byte, error) {
	var opts []glamour.TermRendererOption
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(string(markdown))
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return []byte(out), nil
}
