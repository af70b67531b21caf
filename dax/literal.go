package dax

import (
	pair "github.com/notEpsilon/go-pair"
)

// ColumnDef is a literal column: a name paired with raw Go values.
type ColumnDef = pair.Pair[string, []interface{}]

// Col declares a literal column for Build
func Col(name string, values ...interface{}) ColumnDef {
	return ColumnDef{First: name, Second: values}
}

// Build creates a table from literal column definitions.
//
// Each value is converted with From and the column is added with
// AddColumn, so a later definition with the same name replaces an earlier
// one.
//
//	table := dax.Build(
//	    dax.Col("Sales", 100.0, 150.0, 200.0),
//	    dax.Col("Product", "Apple", "Banana", "Orange"),
//	)
func Build(defs ...ColumnDef) *Table {
	table := NewTable()
	for _, def := range defs {
		table.AddColumn(def.First, Values(def.Second...))
	}
	return table
}
