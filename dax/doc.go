// Package dax evaluates a small DAX-like formula dialect over in-memory
// columnar tables.
//
// The package has three parts:
//   - Value, a tagged scalar (number, text, boolean, null) whose equality
//     and hash treat every NaN as the same value
//   - Tokenize, a character-level lexer producing a flat token stream
//   - Table, a column store with aggregate operations and an evaluator
//     that dispatches an expression to one of them
//
// # Basic Usage
//
// Build a table and evaluate an expression:
//
//	table := dax.NewTable()
//	table.AddColumn("Sales", dax.Values(100.0, 150.0, 200.0))
//
//	result, err := table.Evaluate("SUM([Sales])")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result) // 450
//
// Literal tables can be declared in one go:
//
//	table := dax.Build(
//	    dax.Col("Sales", 100.0, 150.0, 200.0),
//	    dax.Col("Quantity", 10, 15, 15),
//	)
//
// # Supported Functions
//
// Evaluate understands SUM, AVERAGE, MIN, MAX and DISTINCTCOUNT, each
// applied to a single column reference such as [Sales]. Names are
// case-sensitive. COUNT and DIVIDE are available as Table.Count and Divide
// but are not part of the expression language.
//
// # Limitations
//
// There is no expression tree. Evaluate stops at the first function and
// its column, so arithmetic between aggregates and nested calls are not
// evaluated:
//
//	table.Evaluate("SUM([Sales]) / SUM([Quantity])") // same as SUM([Sales])
//
// # Errors
//
// Failures are reported as *EvalError values wrapping one of
// ErrUnsupportedFunction, ErrCalculation or ErrInvalidExpression:
//
//	_, err := table.Evaluate("MEDIAN([Sales])")
//	if errors.Is(err, dax.ErrUnsupportedFunction) {
//	    // ...
//	}
package dax
