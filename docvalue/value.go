package docvalue

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind identifies a Value variant.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a node of the document tree produced by writers. Six variants
// exist: Null, Bool, Number, Str, Array and Object. Values are immutable once
// handed to a caller; Equal is structural (object equality is order-sensitive
// because field order is significant on output).
type Value interface {
	Kind() Kind
	Equal(other Value) bool
}

// Null is the null variant.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

func (Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}

// Bool is the boolean variant.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

func (b Bool) Equal(other Value) bool {
	ob, ok := other.(Bool)
	return ok && ob == b
}

// Number is the numeric variant. It carries the decimal literal verbatim
// (json.Number representation) so integers and big decimals stay exact.
// Equality compares the literal text: Number("1.0") and Number("1") are
// distinct values.
type Number json.Number

func (Number) Kind() Kind { return KindNumber }

func (n Number) Equal(other Value) bool {
	on, ok := other.(Number)
	return ok && on == n
}

// String returns the decimal literal.
func (n Number) String() string { return string(n) }

// Str is the string variant.
type Str string

func (Str) Kind() Kind { return KindString }

func (s Str) Equal(other Value) bool {
	os, ok := other.(Str)
	return ok && os == s
}

// Array is the sequence variant. Element order is significant.
type Array []Value

func (Array) Kind() Kind { return KindArray }

func (a Array) Equal(other Value) bool {
	oa, ok := other.(Array)
	if !ok || len(oa) != len(a) {
		return false
	}
	for i := range a {
		if !a[i].Equal(oa[i]) {
			return false
		}
	}
	return true
}

// Arr builds an Array from the given elements.
func Arr(elems ...Value) Array {
	out := make(Array, 0, len(elems))
	return append(out, elems...)
}

// NumberOf renders a signed integer as an exact Number.
func NumberOf[T ~int | ~int8 | ~int16 | ~int32 | ~int64](v T) Number {
	return Number(strconv.FormatInt(int64(v), 10))
}

// NumberOfUint renders an unsigned integer as an exact Number.
func NumberOfUint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr](v T) Number {
	return Number(strconv.FormatUint(uint64(v), 10))
}

// NumberOfFloat renders a finite float as a Number using the shortest
// round-trippable representation. bits selects the precision of the source
// value (32 or 64). It reports false for NaN and ±Inf, which have no Number
// representation; callers choose the fallback encoding.
func NumberOfFloat(f float64, bits int) (Number, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number(""), false
	}
	return Number(strconv.FormatFloat(f, 'g', -1, bits)), true
}

// NumberOfDecimal wraps an exact decimal literal as a Number verbatim.
func NumberOfDecimal(n json.Number) Number { return Number(n) }
