// Package output renders dax tables in several formats.
package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/vegasq/daxcat/dax"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a table in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(table *dax.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

var formatters = map[string]func(io.Writer) Formatter{
	"grid":  func(w io.Writer) Formatter { return NewGridFormatter(w) },
	"csv":   func(w io.Writer) Formatter { return NewCSVFormatter(w) },
	"json":  func(w io.Writer) Formatter { return NewJSONFormatter(w) },
	"jsonl": func(w io.Writer) Formatter { return NewJSONFormatter(w) },
}

// New returns the formatter registered under name
func New(name string, w io.Writer) (Formatter, error) {
	ctor, ok := formatters[name]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (supported: %v)", name, Names())
	}
	return ctor(w), nil
}

// Names lists the registered format names
func Names() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// snapshot is a consistent copy of a table's columns in sorted-name order
type snapshot struct {
	names   []string
	columns [][]dax.Value
	rows    int
}

func takeSnapshot(table *dax.Table) snapshot {
	s := snapshot{names: table.ColumnNames()}
	s.columns = make([][]dax.Value, len(s.names))
	for i, name := range s.names {
		values, _ := table.Column(name)
		s.columns[i] = values
		s.rows = max(s.rows, len(values))
	}
	return s
}

// cell returns the value at row of column col. ok is false past the end of
// a short column.
func (s snapshot) cell(col, row int) (dax.Value, bool) {
	values := s.columns[col]
	if row >= len(values) {
		return dax.Value{}, false
	}
	return values[row], true
}
