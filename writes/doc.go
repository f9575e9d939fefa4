// Package writes provides the default writer catalog for gowrites.
//
// Overview
//   - Primitives: Bool()/String()/StringOf[T]/Int[T]/Uint[T]/Float64()/Float32()/Decimal().
//   - Containers: Slice(elem), Map(elem) (sorted keys), Entries(elem) (caller order), Optional(inner).
//   - Identity(): pass-through writer for values that are already document trees.
//   - Time: TimeMillis() (epoch milliseconds) and TimeFormat(layout) (string rendering).
//
// Entry points
//   - Every constructor is a free function returning a gowrites.Writer[T] or
//     gowrites.ObjectWriter[T]; compose them with gowrites.Field/Merge/ContraMap.
//
// Numeric policy
//   - Integers and json.Number literals write exactly; nothing round-trips
//     through float64.
//   - NaN and ±Inf have no Number representation and write as Null. This is
//     the catalog's single documented fallback.
//
// File layout (roles)
//   - primitives.go: scalar writers and Identity.
//   - containers.go: Slice/Map/Entries/Optional.
//   - time.go: TimeMillis/TimeFormat.
//
// Example
//
//	w := writes.Slice(writes.Int[int]())
//	v := w.WriteValue([]int{1, 2, 3}) // Array[Number(1), Number(2), Number(3)]
package writes
