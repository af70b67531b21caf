package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/daxcat/dax"
)

// GridFormatter renders a table as a bordered text grid.
//
// Columns appear in sorted-name order. Each column is as wide as its
// header or its widest formatted cell. Text is left-aligned, numbers and
// booleans are right-aligned, and cells past the end of a short column
// are left blank.
type GridFormatter struct {
	writer io.Writer
}

// NewGridFormatter creates a new grid formatter
func NewGridFormatter(w io.Writer) *GridFormatter {
	return &GridFormatter{writer: w}
}

// SetOutput sets the output writer
func (g *GridFormatter) SetOutput(w io.Writer) {
	g.writer = w
}

// Format writes the table as a grid. An empty table writes nothing.
func (g *GridFormatter) Format(table *dax.Table) error {
	snap := takeSnapshot(table)
	if len(snap.names) == 0 {
		return nil
	}

	widths := columnWidths(snap)

	tw := tablewriter.NewWriter(g.writer)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetCenterSeparator("┼")
	tw.SetColumnSeparator("│")
	tw.SetRowSeparator("─")
	tw.SetHeader(snap.names)

	for row := 0; row < snap.rows; row++ {
		record := make([]string, len(snap.names))
		for col := range snap.names {
			v, ok := snap.cell(col, row)
			if !ok {
				record[col] = tablewriter.PadRight("", " ", widths[col])
				continue
			}
			record[col] = alignCell(v, widths[col])
		}
		tw.Append(record)
	}

	tw.Render()
	return nil
}

// FormatCell renders a value as a grid cell: numbers with two decimals,
// booleans as true/false, null as an empty string.
func FormatCell(v dax.Value) string {
	switch v.Kind() {
	case dax.KindNumber:
		n, _ := v.Float()
		return fmt.Sprintf("%.2f", n)
	case dax.KindBoolean:
		b, _ := v.Bool()
		return strconv.FormatBool(b)
	case dax.KindText:
		s, _ := v.Str()
		return s
	default:
		return ""
	}
}

// alignCell pads a formatted cell to width
func alignCell(v dax.Value, width int) string {
	text := FormatCell(v)
	if v.Kind() == dax.KindText {
		return tablewriter.PadRight(text, " ", width)
	}
	return tablewriter.PadLeft(text, " ", width)
}

// columnWidths returns max(header, widest cell) per column in display cells
func columnWidths(snap snapshot) []int {
	widths := make([]int, len(snap.names))
	for i, name := range snap.names {
		widths[i] = runewidth.StringWidth(name)
		for _, v := range snap.columns[i] {
			widths[i] = max(widths[i], runewidth.StringWidth(FormatCell(v)))
		}
	}
	return widths
}
