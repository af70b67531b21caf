package reader

import (
	"fmt"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/daxcat/dax"
)

// SchemaInfo describes one leaf column of a Parquet file and the DAX value
// kind its cells are loaded as.
type SchemaInfo struct {
	Name         string `json:"name"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type"`
	Kind         string `json:"kind"`
	Optional     bool   `json:"optional"`
	Repeated     bool   `json:"repeated"`
}

// ExtractSchemaInfo lists the leaf columns of the Parquet file at path.
//
// Nested fields use dot notation (e.g. "address.street"), matching the
// column names ReadParquetFile produces.
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = r.Close() }()

	var infos []SchemaInfo
	for _, field := range r.Schema().Fields() {
		infos = append(infos, extractFieldInfo(field, "", false)...)
	}
	return infos, nil
}

// extractFieldInfo walks a field recursively. Groups produce no entry of
// their own; repetition is inherited by their children.
func extractFieldInfo(field parquet.Field, prefix string, parentRepeated bool) []SchemaInfo {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}
	repeated := parentRepeated || field.Repeated()

	if children := field.Fields(); len(children) > 0 {
		var infos []SchemaInfo
		for _, child := range children {
			infos = append(infos, extractFieldInfo(child, name, repeated)...)
		}
		return infos
	}

	info := SchemaInfo{
		Name:     name,
		Optional: field.Optional(),
		Repeated: repeated,
	}
	if typ := field.Type(); typ != nil {
		info.PhysicalType = physicalTypeName(typ.Kind())
		if lt := typ.LogicalType(); lt != nil {
			info.LogicalType = lt.String()
		}
		info.Kind = kindOf(typ.Kind()).String()
	}
	return []SchemaInfo{info}
}

func physicalTypeName(kind parquet.Kind) string {
	switch kind {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// kindOf mirrors the conversion done by parquetValue for non-null cells
func kindOf(kind parquet.Kind) dax.Kind {
	switch kind {
	case parquet.Boolean:
		return dax.KindBoolean
	case parquet.Int32, parquet.Int64, parquet.Float, parquet.Double:
		return dax.KindNumber
	default:
		return dax.KindText
	}
}
