package gowrites

// Package gowrites provides:
//
// - Type-directed serialization via the Writer/ObjectWriter capabilities (WriteValue/WriteObject)
// - A combinator algebra: Merge (object composition over pairs), ContraMap (contravariant adapt), Field
// - A default writer catalog under writes/ for primitives, containers, optionals, and time
// - An ordered document tree under docvalue/ with JSON and YAML rendering
//
// Design policy:
// - Keep only public APIs in the root package; the root depends on docvalue and nothing else.
// - Place the writer catalog under writes/, the value model under docvalue/, and the CLI under cmd/gowrites.
// - Writers resolve at compile time: a call site needs a Writer[T] value in scope, or the build fails.
//   The Registry covers dynamic seams and rejects ambiguous registration.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	userWriter := gowrites.Merge(
//		gowrites.Field("name", writes.String()),
//		gowrites.Field("age", writes.Int[int]()),
//	)
//	doc := userWriter.WriteObject(gowrites.PairOf(u.Name, u.Age))
//	out, err := docvalue.EncodeJSON(doc)
