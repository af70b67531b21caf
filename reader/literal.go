package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vegasq/daxcat/dax"
)

// literalTable is the YAML layout of a literal table:
//
//	columns:
//	  - name: Sales
//	    values: [100.0, 150.0, 200.0]
//	  - name: Product
//	    values: [Apple, Banana, Orange]
type literalTable struct {
	Columns []literalColumn `yaml:"columns"`
}

type literalColumn struct {
	Name   string        `yaml:"name"`
	Values []interface{} `yaml:"values"`
}

// ReadLiteralFile opens path and reads it with ReadLiteral.
func ReadLiteralFile(path string) (*dax.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	table, err := ReadLiteral(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ReadLiteral decodes a YAML literal table and builds it with dax.Build.
//
// YAML scalars keep their natural type: numbers become Number, true/false
// become Boolean, null or ~ becomes Null and everything else is Text.
func ReadLiteral(r io.Reader) (*dax.Table, error) {
	var lit literalTable

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&lit); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode literal table: %w", err)
	}

	defs := make([]dax.ColumnDef, 0, len(lit.Columns))
	for i, col := range lit.Columns {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		defs = append(defs, dax.Col(col.Name, col.Values...))
	}

	return dax.Build(defs...), nil
}
