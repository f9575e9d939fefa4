package writes

import (
	"encoding/json"

	gowrites "github.com/reoring/gowrites"
	"github.com/reoring/gowrites/docvalue"
)

// Bool returns the writer for booleans.
func Bool() gowrites.Writer[bool] {
	return gowrites.WriterFunc[bool](func(v bool) docvalue.Value { return docvalue.Bool(v) })
}

// String returns the writer for strings.
func String() gowrites.Writer[string] {
	return gowrites.WriterFunc[string](func(v string) docvalue.Value { return docvalue.Str(v) })
}

// StringOf returns the string writer projected onto a domain type with
// underlying string (IDs, enums).
func StringOf[T ~string]() gowrites.Writer[T] {
	return gowrites.WriterFunc[T](func(v T) docvalue.Value { return docvalue.Str(string(v)) })
}

// Int returns the exact writer for signed integers of any width.
func Int[T ~int | ~int8 | ~int16 | ~int32 | ~int64]() gowrites.Writer[T] {
	return gowrites.WriterFunc[T](func(v T) docvalue.Value { return docvalue.NumberOf(v) })
}

// Uint returns the exact writer for unsigned integers of any width.
func Uint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr]() gowrites.Writer[T] {
	return gowrites.WriterFunc[T](func(v T) docvalue.Value { return docvalue.NumberOfUint(v) })
}

// Float64 returns the writer for float64. NaN and ±Inf have no Number
// representation and encode as Null; this is the one documented fallback, not
// an error.
func Float64() gowrites.Writer[float64] {
	return gowrites.WriterFunc[float64](func(v float64) docvalue.Value {
		n, ok := docvalue.NumberOfFloat(v, 64)
		if !ok {
			return docvalue.Null{}
		}
		return n
	})
}

// Float32 returns the writer for float32 (shortest 32-bit representation;
// same Null fallback for non-finite values as Float64).
func Float32() gowrites.Writer[float32] {
	return gowrites.WriterFunc[float32](func(v float32) docvalue.Value {
		n, ok := docvalue.NumberOfFloat(float64(v), 32)
		if !ok {
			return docvalue.Null{}
		}
		return n
	})
}

// Decimal returns the writer for arbitrary-precision decimal literals carried
// as json.Number. The literal passes through exactly as given.
func Decimal() gowrites.Writer[json.Number] {
	return gowrites.WriterFunc[json.Number](func(v json.Number) docvalue.Value {
		return docvalue.NumberOfDecimal(v)
	})
}

// Identity returns the pass-through writer for values that are already
// document trees. A nil Value writes as Null.
func Identity() gowrites.Writer[docvalue.Value] {
	return gowrites.WriterFunc[docvalue.Value](func(v docvalue.Value) docvalue.Value {
		if v == nil {
			return docvalue.Null{}
		}
		return v
	})
}
