package output

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/vegasq/daxcat/dax"
)

// JSONFormatter outputs a table as JSON Lines, one object per row
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row. Keys past the end of a short
// column are omitted.
func (j *JSONFormatter) Format(table *dax.Table) error {
	encoder := json.NewEncoder(j.writer)
	snap := takeSnapshot(table)

	for row := 0; row < snap.rows; row++ {
		obj := make(map[string]interface{}, len(snap.names))
		for col, name := range snap.names {
			if v, ok := snap.cell(col, row); ok {
				obj[name] = jsonValue(v)
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

// jsonValue maps a value onto encoding/json types. NaN and the infinities
// have no JSON number form and are written as strings.
func jsonValue(v dax.Value) interface{} {
	switch v.Kind() {
	case dax.KindNumber:
		n, _ := v.Float()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return strconv.FormatFloat(n, 'g', -1, 64)
		}
		return n
	case dax.KindBoolean:
		b, _ := v.Bool()
		return b
	case dax.KindText:
		s, _ := v.Str()
		return s
	default:
		return nil
	}
}
