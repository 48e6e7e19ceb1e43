package output

import (
	"encoding/json"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// FormatTable renders a standalone table, such as the fee comparison, in one
// of csv, markdown, json, html or console.
func FormatTable(t domain.Table, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "csv", "detailed-csv", "withdrawal-csv":
		return TableCSV(t)
	case "markdown":
		return []byte(MarkdownTable(t)), nil
	case "json":
		return json.MarshalIndent(t, "", "  ")
	case "html":
		return TableHTML(t)
	case "console", "console-lite":
		return TableConsole(t)
	default:
		return nil, unsupported(format)
	}
}
