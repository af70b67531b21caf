package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/vegasq/daxcat/dax"
)

// CSVOptions configures delimited-text ingestion.
type CSVOptions struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune

	// Encoding is a WHATWG label such as "latin1" or "windows-1252".
	// Empty or "utf-8" reads the input as UTF-8.
	Encoding string
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string, opts CSVOptions) (*dax.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	table, err := ReadCSV(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ReadCSV builds a table from delimited text.
//
// The first record names the columns. Each later record appends its fields
// to the columns at the same position: fields past the header count are
// ignored and a short record leaves the remaining columns one entry
// shorter. Cells are typed with ParseCell.
func ReadCSV(r io.Reader, opts CSVOptions) (*dax.Table, error) {
	src, err := decode(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(src)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	if opts.Delimiter != 0 {
		csvReader.Comma = opts.Delimiter
	}

	table := dax.NewTable()

	headers, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([][]dax.Value, len(headers))
	for {
		record, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		for i, field := range record {
			if i >= len(columns) {
				break
			}
			columns[i] = append(columns[i], ParseCell(field))
		}
	}

	for i, header := range headers {
		table.AddColumn(header, columns[i])
	}

	log.Debug().
		Int("columns", len(headers)).
		Int("rows", table.RowCount()).
		Msg("read csv")

	return table, nil
}

// decode wraps r with a decoder for the named encoding
func decode(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	}

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}
	return enc.NewDecoder().Reader(r), nil
}

// ParseCell types a single delimited-text field.
//
// Anything that parses as a float becomes a Number, "true" and "false"
// (any case) become a Boolean, the empty string becomes Null and
// everything else stays Text.
func ParseCell(field string) dax.Value {
	// out-of-range numbers keep their ±Inf or zero result
	if n, err := strconv.ParseFloat(field, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return dax.Number(n)
	}
	switch {
	case strings.EqualFold(field, "true"):
		return dax.Boolean(true)
	case strings.EqualFold(field, "false"):
		return dax.Boolean(false)
	case field == "":
		return dax.Null()
	default:
		return dax.Text(field)
	}
}
