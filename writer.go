package gowrites

import "github.com/reoring/gowrites/docvalue"

// Writer is the serializer capability for T: a pure, total, deterministic
// conversion of a T into a document Value. WriteValue never fails and never
// mutates; anything that can go wrong (a bad configuration, a missing writer)
// surfaces at construction or wiring time instead. Writers are immutable and
// safe for concurrent use.
type Writer[T any] interface {
	WriteValue(v T) docvalue.Value
}

// WriterFunc adapts an ordinary function to the Writer capability.
type WriterFunc[T any] func(T) docvalue.Value

func (f WriterFunc[T]) WriteValue(v T) docvalue.Value { return f(v) }

// ObjectWriter refines Writer: its output is always the Object variant. The
// refinement is carried by the narrower return type of WriteObject, so any
// ObjectWriter stands in wherever a Writer is required, never the other way
// around. Merge is defined only between ObjectWriters.
type ObjectWriter[T any] interface {
	Writer[T]
	WriteObject(v T) *docvalue.Object
}

// ObjectWriterFunc adapts a function returning an Object to the ObjectWriter
// capability; WriteValue is derived from WriteObject.
type ObjectWriterFunc[T any] func(T) *docvalue.Object

func (f ObjectWriterFunc[T]) WriteObject(v T) *docvalue.Object { return f(v) }

func (f ObjectWriterFunc[T]) WriteValue(v T) docvalue.Value { return f(v) }

// Write serializes v using w. It exists as the uniform entry point at call
// sites where the writer is resolved by the type checker rather than named.
func Write[T any](w Writer[T], v T) docvalue.Value { return w.WriteValue(v) }
