// Package reader loads tables for the dax package from files.
//
// Three input formats are supported:
//   - delimited text (CSV/TSV), typed one cell at a time by ParseCell
//   - Apache Parquet, via github.com/segmentio/parquet-go
//   - YAML literal tables, a list of named columns with inline values
//
// # Basic Usage
//
// Reading a CSV file:
//
//	table, err := reader.ReadCSVFile("sales.csv", reader.CSVOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	total, err := table.Evaluate("SUM([Sales])")
//
// Reading a Latin-1 file separated by semicolons:
//
//	table, err := reader.ReadCSVFile("legacy.csv", reader.CSVOptions{
//	    Delimiter: ';',
//	    Encoding:  "latin1",
//	})
//
// Letting the extension decide:
//
//	table, err := reader.ReadFile("data.parquet", reader.CSVOptions{})
//
// # Ragged Input
//
// Columns are filled independently. A record with fewer fields than the
// header leaves the trailing columns shorter than the others; extra fields
// are dropped. Consumers that walk rows must bounds-check every column.
//
// # Errors
//
// I/O failures are wrapped with %w, so callers can test for missing files
// with errors.Is(err, fs.ErrNotExist).
package reader
