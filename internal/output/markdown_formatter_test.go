package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

type parsedTable struct {
	header []string
	align  []east.Alignment
	rows   [][]string
}

// parseTables extracts every GFM table from markdown source.
func parseTables(t *testing.T, src []byte) []parsedTable {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src))

	var tables []parsedTable
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case east.KindTable:
			tables = append(tables, parsedTable{})
		case east.KindTableHeader:
			cur := &tables[len(tables)-1]
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				cur.header = append(cur.header, inlineText(c, src))
				cur.align = append(cur.align, c.(*east.TableCell).Alignment)
			}
			return ast.WalkSkipChildren, nil
		case east.KindTableRow:
			cur := &tables[len(tables)-1]
			var row []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				row = append(row, inlineText(c, src))
			}
			cur.rows = append(cur.rows, row)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return tables
}

func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if txt, ok := c.(*ast.Text); ok {
			sb.Write(txt.Segment.Value(src))
			continue
		}
		sb.WriteString(inlineText(c, src))
	}
	return strings.TrimSpace(sb.String())
}

func TestMarkdownFormatterTables(t *testing.T) {
	out, err := MarkdownFormatter{}.Format(buildTestResult())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "# PEA Brokerage Comparison\n"))

	tables := parseTables(t, out)
	require.Len(t, tables, 2)

	acc := tables[0]
	assert.Equal(t, []string{"Year", "CumulativeContribution", "A", "B & Co"}, acc.header)
	assert.Equal(t, []east.Alignment{east.AlignNone, east.AlignRight, east.AlignRight, east.AlignRight}, acc.align)
	require.Len(t, acc.rows, 3)
	assert.Equal(t, []string{"1", "1000.00", "1010.00", "1015.00"}, acc.rows[1])

	wd := tables[1]
	assert.Equal(t, []string{"", "A", "B & Co"}, wd.header)
	require.Len(t, wd.rows, 5)
	assert.Equal(t, []string{"Gross Monthly at 4%", "6.77", "6.80"}, wd.rows[1])
	assert.Equal(t, []string{"After tax", "6.40", "6.60"}, wd.rows[4])

	assert.Contains(t, string(out), "**Recommended:** B & Co")
}

func TestMarkdownTableEscapesPipes(t *testing.T) {
	res := buildTestResult()
	res.Providers[0].Name = "Left|Right"
	out, err := MarkdownFormatter{}.Format(res)
	require.NoError(t, err)

	tables := parseTables(t, out)
	require.Len(t, tables, 2)
	assert.Len(t, tables[0].header, 4, "escaped pipe must not split the column")
}

func TestRenderTerminal(t *testing.T) {
	md, err := MarkdownFormatter{}.Format(buildTestResult())
	require.NoError(t, err)

	out, err := RenderTerminal(md, "notty", 120)
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "Accumulation")
	assert.Contains(t, content, "2030.50")
	assert.NotContains(t, content, "| --- |", "tables should be drawn, not left as source")
}

func TestRenderTerminalUnknownStyle(t *testing.T) {
	_, err := RenderTerminal([]byte("# x"), "no-such-style", 80)
	assert.Error(t, err)
}
