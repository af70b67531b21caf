package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const salesLiteral = `
columns:
  - name: Sales
    values: [100.0, 150.0, 200.0]
  - name: Quantity
    values: [10, 15, 15]
  - name: Product
    values: [Apple, Banana, Orange]
  - name: InStock
    values: [true, false, ~]
`

func TestReadLiteral(t *testing.T) {
	table, err := ReadLiteral(strings.NewReader(salesLiteral))
	if err != nil {
		t.Fatalf("ReadLiteral() error = %v", err)
	}

	if table.Len() != 4 {
		t.Fatalf("expected 4 columns, got %v", table.ColumnNames())
	}

	got, err := table.Evaluate("SUM([Sales])")
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := got.Float(); n != 450 {
		t.Errorf("SUM([Sales]) = %v, want 450", n)
	}

	quantity, _ := table.Column("Quantity")
	if !quantity[0].IsNumber() {
		t.Errorf("YAML integers should load as numbers, got %s", quantity[0].Kind())
	}

	stock, _ := table.Column("InStock")
	if b, ok := stock[0].Bool(); !ok || !b {
		t.Errorf("InStock[0] = %v", stock[0])
	}
	if !stock[2].IsNull() {
		t.Errorf("InStock[2] = %v, want null", stock[2])
	}
}

func TestReadLiteral_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown field", "tables: []\n"},
		{"unnamed column", "columns:\n  - values: [1]\n"},
		{"malformed yaml", "columns: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadLiteral(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReadLiteral_Empty(t *testing.T) {
	table, err := ReadLiteral(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 0 {
		t.Errorf("expected empty table, got %v", table.ColumnNames())
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "sales.csv")
	tsvPath := filepath.Join(dir, "sales.tsv")
	yamlPath := filepath.Join(dir, "sales.yaml")
	parquetPath := createTestParquetFile(t, dir, "sales.parquet", sampleSalesRows())

	files := map[string]string{
		csvPath:  "Sales\n100\n150\n200\n",
		tsvPath:  "Product\tSales\nA\t100\nB\t150\nC\t200\n",
		yamlPath: salesLiteral,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		path   string
		column string
		format Format
	}{
		{csvPath, "Sales", FormatCSV},
		{tsvPath, "Sales", FormatCSV},
		{yamlPath, "Sales", FormatLiteral},
		{parquetPath, "sales", FormatParquet},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.format {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.format)
			}
			table, err := ReadFile(tt.path, CSVOptions{})
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			sum, ok := table.Sum(tt.column)
			if !ok || sum != 450 {
				t.Errorf("Sum(%s) = %v, %v; want 450", tt.column, sum, ok)
			}
		})
	}

	if _, err := ReadFile(filepath.Join(dir, "sales.xlsx"), CSVOptions{}); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
