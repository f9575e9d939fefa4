package writes

import (
	"sort"

	gowrites "github.com/reoring/gowrites"
	"github.com/reoring/gowrites/docvalue"
)

// Slice returns the writer for []T given an element writer. Element order is
// preserved; a nil slice writes as an empty array.
func Slice[T any](elem gowrites.Writer[T]) gowrites.Writer[[]T] {
	return gowrites.WriterFunc[[]T](func(vs []T) docvalue.Value {
		arr := make(docvalue.Array, 0, len(vs))
		for _, v := range vs {
			arr = append(arr, elem.WriteValue(v))
		}
		return arr
	})
}

// Map returns the object writer for map[string]T given an element writer.
// Go maps carry no iteration order, so fields are emitted in sorted key order
// to keep WriteValue deterministic. Use Entries when caller-defined order
// matters.
func Map[T any](elem gowrites.Writer[T]) gowrites.ObjectWriter[map[string]T] {
	return gowrites.ObjectWriterFunc[map[string]T](func(m map[string]T) *docvalue.Object {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := docvalue.NewObject()
		for _, k := range keys {
			out.Set(k, elem.WriteValue(m[k]))
		}
		return out
	})
}

// Entry pairs a key with a value for order-preserving object writes.
type Entry[T any] struct {
	Key   string
	Value T
}

// Entries returns the object writer for an ordered key/value sequence. Field
// order follows the slice; a repeated key keeps its first position and the
// last value (docvalue's duplicate policy).
func Entries[T any](elem gowrites.Writer[T]) gowrites.ObjectWriter[[]Entry[T]] {
	return gowrites.ObjectWriterFunc[[]Entry[T]](func(es []Entry[T]) *docvalue.Object {
		out := docvalue.NewObject()
		for _, e := range es {
			out.Set(e.Key, elem.WriteValue(e.Value))
		}
		return out
	})
}

// Optional returns the writer for *T: a nil pointer writes as Null, a present
// value writes via the inner writer. The result is a general Writer even when
// the inner writer is an ObjectWriter, since Null breaks the object
// guarantee.
func Optional[T any](w gowrites.Writer[T]) gowrites.Writer[*T] {
	return gowrites.WriterFunc[*T](func(p *T) docvalue.Value {
		if p == nil {
			return docvalue.Null{}
		}
		return w.WriteValue(*p)
	})
}
