package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/parquet-go"

	"github.com/vegasq/daxcat/dax"
)

// rowBatchSize is how many rows are requested from the parquet reader at once
const rowBatchSize = 256

// ParquetReader reads parquet files into tables.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens the parquet file at path.
//
// Returns an error if the file doesn't exist or is not a valid parquet
// file.
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadTable loads every leaf column of the file into a table.
func (r *ParquetReader) ReadTable() (*dax.Table, error) {
	return readParquetTable(r.pqFile)
}

// Schema returns the parquet file schema.
func (r *ParquetReader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// ReadParquetFile reads the parquet file at path into a table.
func ReadParquetFile(path string) (*dax.Table, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	table, err := r.ReadTable()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ReadParquet reads parquet data of the given size from r into a table.
func ReadParquet(r io.ReaderAt, size int64) (*dax.Table, error) {
	pqFile, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	return readParquetTable(pqFile)
}

// readParquetTable converts every leaf column to a table column named by
// its dotted path. Values of repeated columns are flattened in order.
func readParquetTable(pqFile *parquet.File) (*dax.Table, error) {
	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	paths := reader.Schema().Columns()
	columns := make([][]dax.Value, len(paths))

	rows := make([]parquet.Row, rowBatchSize)
	for {
		n, err := reader.ReadRows(rows)
		for _, row := range rows[:n] {
			for _, v := range row {
				col := v.Column()
				if col < 0 || col >= len(columns) {
					continue
				}
				columns[col] = append(columns[col], parquetValue(v))
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if n == 0 {
			break
		}
	}

	table := dax.NewTable()
	for i, path := range paths {
		table.AddColumn(strings.Join(path, "."), columns[i])
	}

	log.Debug().
		Int("columns", len(paths)).
		Int("rows", table.RowCount()).
		Msg("read parquet")

	return table, nil
}

// parquetValue maps a parquet value onto the DAX value model
func parquetValue(v parquet.Value) dax.Value {
	if v.IsNull() {
		return dax.Null()
	}

	switch v.Kind() {
	case parquet.Boolean:
		return dax.Boolean(v.Boolean())
	case parquet.Int32:
		return dax.Number(float64(v.Int32()))
	case parquet.Int64:
		return dax.Number(float64(v.Int64()))
	case parquet.Float:
		return dax.Number(float64(v.Float()))
	case parquet.Double:
		return dax.Number(v.Double())
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return dax.Text(string(v.ByteArray()))
	default:
		return dax.Text(v.String())
	}
}
