package atomsbase

import (
	"fmt"
	"strconv"

	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSymbol
	KindQuantity
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindQuantity:
		return "quantity"
	case KindVector:
		return "vector"
	default:
		return "invalid"
	}
}

// Value is a property value: one of bool, int, float, string, symbol, unit
// quantity or unit vector. The zero Value is invalid.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	q    units.Quantity
	v    units.Vector
}

func BoolValue(b bool) Value               { return Value{kind: KindBool, b: b} }
func IntValue(i int64) Value               { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value           { return Value{kind: KindFloat, f: f} }
func StringValue(s string) Value           { return Value{kind: KindString, s: s} }
func SymbolValue(s Symbol) Value           { return Value{kind: KindSymbol, s: string(s)} }
func QuantityValue(q units.Quantity) Value { return Value{kind: KindQuantity, q: q} }
func VectorValue(v units.Vector) Value     { return Value{kind: KindVector, v: v} }

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float returns the value as float64. Ints convert; other kinds report false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

func (v Value) Symbol() (Symbol, bool) {
	return Symbol(v.s), v.kind == KindSymbol
}

func (v Value) Quantity() (units.Quantity, bool) {
	return v.q, v.kind == KindQuantity
}

func (v Value) Vector() (units.Vector, bool) {
	return v.v, v.kind == KindVector
}

// Equal compares kind and payload. Quantities and vectors compare after unit
// conversion, so NaN quantities never compare equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInvalid:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString, KindSymbol:
		return v.s == o.s
	case KindQuantity:
		return v.q.Equal(o.q)
	case KindVector:
		return v.v.Equal(o.v)
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindSymbol:
		return ":" + v.s
	case KindQuantity:
		return v.q.String()
	case KindVector:
		return v.v.String()
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}
