// Package output provides formatters for writing dax tables.
//
// Every formatter satisfies the Formatter interface and renders columns in
// sorted-name order. Rows are taken positionally across columns; a column
// shorter than the longest one contributes empty cells past its end.
//
// # Supported Formats
//
//   - grid: a bordered text grid for terminals (numbers with two decimals)
//   - csv: comma-separated values with a header row
//   - json / jsonl: one JSON object per line
//
// # Basic Usage
//
//	table := dax.Build(
//	    dax.Col("Product", "Apple", "Banana"),
//	    dax.Col("Sales", 100.0, 150.0),
//	)
//
//	formatter, err := output.New("grid", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(table); err != nil {
//	    log.Fatal(err)
//	}
//
// produces:
//
//	┼─────────┼────────┼
//	│ Product │ Sales  │
//	┼─────────┼────────┼
//	│ Apple   │ 100.00 │
//	│ Banana  │ 150.00 │
//	┼─────────┼────────┼
//
// # Single Values
//
// FormatCell renders one value the way the grid does, which is also how
// the command line prints expression results.
package output
