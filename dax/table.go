package dax

import (
	"slices"
	"sort"

	"github.com/sasha-s/go-deadlock"
)

// Table is an in-memory column store.
//
// Columns are keyed by name and may have different lengths; nothing
// enforces a rectangular shape. A Table is safe for concurrent use, but the
// intended lifecycle is to populate it with AddColumn first and query it
// afterwards.
type Table struct {
	mu      deadlock.RWMutex
	columns map[string][]Value
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{columns: make(map[string][]Value)}
}

// AddColumn stores values under name, replacing any column with the same
// name. The slice is copied.
func (t *Table) AddColumn(name string, values []Value) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.columns[name] = slices.Clone(values)
}

// Column returns a copy of the named column
func (t *Table) Column(name string) ([]Value, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	values, ok := t.columns[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(values), true
}

// ColumnNames returns the column names in sorted order
func (t *Table) ColumnNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.columns))
	for name := range t.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of columns
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.columns)
}

// RowCount returns the length of the longest column
func (t *Table) RowCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rows := 0
	for _, values := range t.columns {
		rows = max(rows, len(values))
	}
	return rows
}

// withColumn runs fn on the named column under the read lock. It reports
// false without calling fn when the column does not exist.
func (t *Table) withColumn(name string, fn func([]Value)) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	values, ok := t.columns[name]
	if !ok {
		return false
	}
	fn(values)
	return true
}
