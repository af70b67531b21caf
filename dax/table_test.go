package dax

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestTable_AddColumnOverwrites(t *testing.T) {
	table := NewTable()
	table.AddColumn("Sales", Values(1.0, 2.0))
	table.AddColumn("Sales", Values(5.0))

	values, ok := table.Column("Sales")
	if !ok {
		t.Fatal("column Sales not found")
	}
	if len(values) != 1 || !values[0].Equal(Number(5)) {
		t.Errorf("expected overwritten column [5], got %v", values)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 column, got %d", table.Len())
	}
}

func TestTable_ColumnIsCopied(t *testing.T) {
	input := Values(1.0, 2.0)
	table := NewTable()
	table.AddColumn("A", input)

	input[0] = Number(100)
	got, _ := table.Column("A")
	if !got[0].Equal(Number(1)) {
		t.Errorf("AddColumn should copy its input, got %v", got)
	}

	got[1] = Number(100)
	again, _ := table.Column("A")
	if !again[1].Equal(Number(2)) {
		t.Errorf("Column should return a copy, got %v", again)
	}
}

func TestTable_MissingColumn(t *testing.T) {
	table := NewTable()
	if values, ok := table.Column("nope"); ok || values != nil {
		t.Errorf("Column(nope) = %v, %v", values, ok)
	}
}

func TestTable_ShapeAccessors(t *testing.T) {
	table := NewTable()
	table.AddColumn("b", Values(1, 2, 3))
	table.AddColumn("a", Values("x"))
	table.AddColumn("c", nil)

	if got := table.ColumnNames(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("ColumnNames() = %v", got)
	}
	if got := table.RowCount(); got != 3 {
		t.Errorf("RowCount() = %d, want 3", got)
	}
	if got := NewTable().RowCount(); got != 0 {
		t.Errorf("empty RowCount() = %d", got)
	}
}

func TestTable_ConcurrentReaders(t *testing.T) {
	table := NewTable()
	for i := 0; i < 10; i++ {
		table.AddColumn(fmt.Sprintf("c%d", i), Values(1.0, 2.0, 3.0))
	}

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			expr := fmt.Sprintf("SUM([c%d])", i%10)
			got, err := table.Evaluate(expr)
			if err != nil {
				errs <- err
				return
			}
			if n, _ := got.Float(); n != 6 {
				errs <- fmt.Errorf("%s = %v, want 6", expr, n)
			}
		}(i)
	}

	// a writer racing the readers must not corrupt anything
	wg.Add(1)
	go func() {
		defer wg.Done()
		table.AddColumn("extra", Values(1.0))
	}()

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
