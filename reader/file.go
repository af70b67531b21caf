package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vegasq/daxcat/dax"
)

// Format identifies an input file type.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatParquet
	FormatLiteral
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatParquet:
		return "parquet"
	case FormatLiteral:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the input format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return FormatCSV
	case ".parquet", ".pq":
		return FormatParquet
	case ".yaml", ".yml":
		return FormatLiteral
	default:
		return FormatUnknown
	}
}

// ReadFile loads a table from path, choosing the reader by extension.
//
// A .tsv file defaults to a tab delimiter unless opts sets one.
func ReadFile(path string, opts CSVOptions) (*dax.Table, error) {
	switch DetectFormat(path) {
	case FormatCSV:
		if opts.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
			opts.Delimiter = '\t'
		}
		return ReadCSVFile(path, opts)
	case FormatParquet:
		return ReadParquetFile(path)
	case FormatLiteral:
		return ReadLiteralFile(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .csv, .tsv, .parquet or .yaml)", filepath.Ext(path))
	}
}
