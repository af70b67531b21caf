package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vegasq/daxcat/dax"
)

// CSVFormatter outputs a table as CSV with a header row
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the table as CSV. Columns are sorted by name and cells past
// the end of a short column are written empty.
func (c *CSVFormatter) Format(table *dax.Table) error {
	csvWriter := csv.NewWriter(c.writer)
	snap := takeSnapshot(table)

	if len(snap.names) > 0 {
		if err := csvWriter.Write(snap.names); err != nil {
			return err
		}
	}

	for row := 0; row < snap.rows; row++ {
		record := make([]string, len(snap.names))
		for col := range snap.names {
			if v, ok := snap.cell(col, row); ok {
				record[col] = formatValue(v)
			}
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// formatValue converts a value to string for CSV output
func formatValue(v dax.Value) string {
	switch v.Kind() {
	case dax.KindNumber:
		n, _ := v.Float()
		return strconv.FormatFloat(n, 'g', -1, 64)
	case dax.KindBoolean:
		b, _ := v.Bool()
		return strconv.FormatBool(b)
	case dax.KindText:
		s, _ := v.Str()
		return sanitize(s)
	default:
		return ""
	}
}

// sanitize guards against CSV injection by prefixing characters that
// trigger formula execution in spreadsheet applications.
func sanitize(val string) string {
	if len(val) == 0 {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
