package dax

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spaolacci/murmur3"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindBoolean
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a tagged scalar stored in a table column.
//
// The zero Value is Null. Numbers follow IEEE-754 except for equality and
// hashing: every NaN equals every other NaN, so Values can be used as set
// and map keys with NaN collapsing to a single entry.
type Value struct {
	kind Kind
	num  float64
	text string
	b    bool
}

// Number returns a numeric Value
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text returns a text Value
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Boolean returns a boolean Value
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// Null returns the absent Value
func Null() Value {
	return Value{}
}

// From converts a Go primitive to a Value.
//
// Integers and floats of any width become Number, strings become Text,
// bools become Boolean and nil becomes Null. Any other type is rendered
// with %v and stored as Text.
func From(v interface{}) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case Value:
		return val
	case float64:
		return Number(val)
	case float32:
		return Number(float64(val))
	case int:
		return Number(float64(val))
	case int8:
		return Number(float64(val))
	case int16:
		return Number(float64(val))
	case int32:
		return Number(float64(val))
	case int64:
		return Number(float64(val))
	case uint:
		return Number(float64(val))
	case uint8:
		return Number(float64(val))
	case uint16:
		return Number(float64(val))
	case uint32:
		return Number(float64(val))
	case uint64:
		return Number(float64(val))
	case string:
		return Text(val)
	case bool:
		return Boolean(val)
	default:
		return Text(fmt.Sprintf("%v", val))
	}
}

// Values converts a list of Go primitives with From
func Values(vs ...interface{}) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = From(v)
	}
	return out
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Float returns the number held by v, if any
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Str returns the text held by v, if any
func (v Value) Str() (string, bool) {
	return v.text, v.kind == KindText
}

// Bool returns the boolean held by v, if any
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// Equal reports whether v and o hold the same value.
//
// Numbers compare with == except that any two NaNs are equal. Values of
// different kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) && math.IsNaN(o.num) {
			return true
		}
		return v.num == o.num
	case KindText:
		return v.text == o.text
	case KindBoolean:
		return v.b == o.b
	default:
		return true
	}
}

// hash tags; the number sentinels carry no payload
const (
	tagNaN byte = iota
	tagPosInf
	tagNegInf
	tagNull
	tagNumber
	tagText
	tagBoolean
)

// Hash returns a 64-bit murmur3 hash consistent with Equal.
func (v Value) Hash() uint64 {
	var buf []byte
	switch v.kind {
	case KindNumber:
		switch {
		case math.IsNaN(v.num):
			buf = []byte{tagNaN}
		case math.IsInf(v.num, 1):
			buf = []byte{tagPosInf}
		case math.IsInf(v.num, -1):
			buf = []byte{tagNegInf}
		default:
			buf = make([]byte, 9)
			buf[0] = tagNumber
			binary.LittleEndian.PutUint64(buf[1:], numberBits(v.num))
		}
	case KindText:
		buf = make([]byte, 1+len(v.text))
		buf[0] = tagText
		copy(buf[1:], v.text)
	case KindBoolean:
		buf = []byte{tagBoolean, 0}
		if v.b {
			buf[1] = 1
		}
	default:
		buf = []byte{tagNull}
	}
	return murmur3.Sum64(buf)
}

// numberBits returns the bit pattern used for hashing and set keys.
// -0 and +0 are equal under ==, so they share the +0 pattern.
func numberBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

// valueKey is a comparable form of Value with Equal's semantics
type valueKey struct {
	kind Kind
	bits uint64
	text string
}

func (v Value) key() valueKey {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) {
			return valueKey{kind: KindNumber, bits: math.Float64bits(math.NaN())}
		}
		return valueKey{kind: KindNumber, bits: numberBits(v.num)}
	case KindText:
		return valueKey{kind: KindText, text: v.text}
	case KindBoolean:
		if v.b {
			return valueKey{kind: KindBoolean, bits: 1}
		}
		return valueKey{kind: KindBoolean}
	default:
		return valueKey{}
	}
}

// Compare orders v against o and returns -1, 0 or 1.
//
// Numbers use the float partial order. Comparisons involving NaN are
// unordered and report 0, so Compare never fails but is not transitive in
// the presence of NaN. Values of different kinds order by kind.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		if v.kind < o.kind {
			return -1
		}
		return 1
	}
	switch v.kind {
	case KindNumber:
		return compareFloat(v.num, o.num)
	case KindText:
		return strings.Compare(v.text, o.text)
	case KindBoolean:
		switch {
		case v.b == o.b:
			return 0
		case !v.b:
			return -1
		default:
			return 1
		}
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		// equal or unordered
		return 0
	}
}

// String renders the value the way it would appear in an expression result
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	case KindBoolean:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}
