package gowrites

import "github.com/reoring/gowrites/docvalue"

// Pair is the ad-hoc product consumed by merged object writers. It is a
// domain-side pairing only; it never appears in the output document.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair.
func PairOf[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} }

// Merge combines two object writers into one for paired values. The result's
// field sequence is wa's fields followed by wb's. Fields are appended with
// Object.Set, so a key produced by both sides keeps its first position and
// takes the last-appended value (docvalue's duplicate policy). Merge is
// associative up to pair nesting: either association order flattens to the
// same field sequence.
func Merge[A, B any](wa ObjectWriter[A], wb ObjectWriter[B]) ObjectWriter[Pair[A, B]] {
	return ObjectWriterFunc[Pair[A, B]](func(p Pair[A, B]) *docvalue.Object {
		out := docvalue.NewObject()
		for _, f := range wa.WriteObject(p.First).Fields() {
			out.Set(f.Name, f.Value)
		}
		for _, f := range wb.WriteObject(p.Second).Fields() {
			out.Set(f.Name, f.Value)
		}
		return out
	})
}

// ContraMap adapts a Writer[A] into a Writer[B] via a projection B -> A:
// write(b) = w.write(project(b)). ContraMap(w, identity) behaves as w, and
// ContraMap(ContraMap(w, f), g) behaves as ContraMap(w, f∘g).
func ContraMap[A, B any](w Writer[A], project func(B) A) Writer[B] {
	return WriterFunc[B](func(b B) docvalue.Value { return w.WriteValue(project(b)) })
}

// ContraMapObject is ContraMap preserving the object guarantee: projection
// cannot change whether the result is an object.
func ContraMapObject[A, B any](w ObjectWriter[A], project func(B) A) ObjectWriter[B] {
	return ObjectWriterFunc[B](func(b B) *docvalue.Object { return w.WriteObject(project(b)) })
}

// Field wraps a writer's output under a single key, producing the one-field
// object writers that Merge assembles into record serializers.
func Field[T any](name string, w Writer[T]) ObjectWriter[T] {
	return ObjectWriterFunc[T](func(v T) *docvalue.Object {
		return docvalue.NewObject().Set(name, w.WriteValue(v))
	})
}
