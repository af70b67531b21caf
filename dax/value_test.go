package dax

import (
	"math"
	"testing"
)

func TestValue_Equal(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	negInf := math.Inf(-1)

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same number", Number(1.5), Number(1.5), true},
		{"different numbers", Number(1.5), Number(2.5), false},
		{"NaN equals NaN", Number(nan), Number(nan), true},
		{"NaN payloads collapse", Number(nan), Number(math.Float64frombits(0x7ff8000000000001)), true},
		{"NaN vs number", Number(nan), Number(0), false},
		{"+Inf equals +Inf", Number(inf), Number(inf), true},
		{"+Inf vs -Inf", Number(inf), Number(negInf), false},
		{"-Inf vs finite", Number(negInf), Number(-math.MaxFloat64), false},
		{"zero signs", Number(0), Number(math.Copysign(0, -1)), true},
		{"text", Text("a"), Text("a"), true},
		{"text differs", Text("a"), Text("b"), false},
		{"boolean", Boolean(true), Boolean(true), true},
		{"boolean differs", Boolean(true), Boolean(false), false},
		{"null", Null(), Null(), true},
		{"zero value is null", Value{}, Null(), true},
		{"cross kind number/text", Number(1), Text("1"), false},
		{"cross kind bool/number", Boolean(true), Number(1), false},
		{"cross kind null/text", Null(), Text(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestValue_HashConsistentWithEqual(t *testing.T) {
	pairs := [][2]Value{
		{Number(math.NaN()), Number(math.Float64frombits(0x7ff8000000000001))},
		{Number(math.Inf(1)), Number(math.Inf(1))},
		{Number(0), Number(math.Copysign(0, -1))},
		{Number(42), Number(42)},
		{Text("Sales"), Text("Sales")},
		{Boolean(false), Boolean(false)},
		{Null(), Null()},
	}
	for _, p := range pairs {
		if p[0].Hash() != p[1].Hash() {
			t.Errorf("equal values %v and %v hash differently", p[0], p[1])
		}
	}
}

func TestValue_HashSentinelsDistinct(t *testing.T) {
	values := []Value{
		Number(math.NaN()),
		Number(math.Inf(1)),
		Number(math.Inf(-1)),
		Null(),
		Number(0),
		Boolean(false),
		Text(""),
	}
	seen := make(map[uint64]Value)
	for _, v := range values {
		h := v.Hash()
		if prev, ok := seen[h]; ok {
			t.Errorf("%v (%s) and %v (%s) share hash %d", prev, prev.Kind(), v, v.Kind(), h)
		}
		seen[h] = v
	}
}

func TestValue_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"less", Number(1), Number(2), -1},
		{"greater", Number(3), Number(2), 1},
		{"equal", Number(2), Number(2), 0},
		{"NaN is unordered", Number(math.NaN()), Number(1), 0},
		{"NaN on the right", Number(1), Number(math.NaN()), 0},
		{"-Inf below finite", Number(math.Inf(-1)), Number(-1e308), -1},
		{"text", Text("apple"), Text("banana"), -1},
		{"false before true", Boolean(false), Boolean(true), -1},
		{"kinds order", Null(), Number(0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want Value
	}{
		{"float64", 1.5, Number(1.5)},
		{"float32", float32(0.5), Number(0.5)},
		{"int", 7, Number(7)},
		{"int64", int64(-3), Number(-3)},
		{"uint8", uint8(255), Number(255)},
		{"string", "Apple", Text("Apple")},
		{"bool", true, Boolean(true)},
		{"nil", nil, Null()},
		{"value passthrough", Text("x"), Text("x")},
		{"other types use %v", []int{1, 2}, Text("[1 2]")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("From(%#v) = %v (%s), want %v (%s)", tt.in, got, got.Kind(), tt.want, tt.want.Kind())
			}
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	if n, ok := Number(2).Float(); !ok || n != 2 {
		t.Errorf("Number(2).Float() = %v, %v", n, ok)
	}
	if _, ok := Text("2").Float(); ok {
		t.Error("Text.Float() should not report a number")
	}
	if s, ok := Text("x").Str(); !ok || s != "x" {
		t.Errorf("Text.Str() = %q, %v", s, ok)
	}
	if b, ok := Boolean(true).Bool(); !ok || !b {
		t.Errorf("Boolean.Bool() = %v, %v", b, ok)
	}
	if !Null().IsNull() || Number(0).IsNull() {
		t.Error("IsNull mismatch")
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{Number(450), "450"},
		{Number(0.25), "0.25"},
		{Number(math.Inf(-1)), "-Inf"},
		{Text("Apple"), "Apple"},
		{Boolean(false), "false"},
		{Null(), ""},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
