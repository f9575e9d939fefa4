// Package docvalue defines the document tree produced by writers:
//
//   - Six variants: Null, Bool, Number, Str, Array, Object
//   - Object keeps field insertion order and unique keys (Set replaces
//     in place, last value wins)
//   - Number carries the decimal literal verbatim, so exactness never
//     depends on float64
//   - EncodeJSON / EncodeYAML render a finished tree to bytes
//
// The capability algebra in the root package consumes this package only
// through the variant constructors.
package docvalue
