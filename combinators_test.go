package gowrites_test

import (
	"strings"
	"testing"

	gowrites "github.com/reoring/gowrites"
	"github.com/reoring/gowrites/docvalue"
)

func stringWriter() gowrites.Writer[string] {
	return gowrites.WriterFunc[string](func(s string) docvalue.Value { return docvalue.Str(s) })
}

func intWriter() gowrites.Writer[int] {
	return gowrites.WriterFunc[int](func(n int) docvalue.Value { return docvalue.NumberOf(n) })
}

func TestField_WrapsUnderKey(t *testing.T) {
	w := gowrites.Field("name", stringWriter())
	o := w.WriteObject("alice")
	want := docvalue.Obj(docvalue.F("name", docvalue.Str("alice")))
	if !o.Equal(want) {
		t.Fatalf("got=%v want=%v", o.Fields(), want.Fields())
	}
	// The refinement: WriteValue yields the same object.
	if !w.WriteValue("alice").Equal(want) {
		t.Fatalf("WriteValue disagrees with WriteObject")
	}
}

func TestMerge_FieldOrder(t *testing.T) {
	wa := gowrites.Field("a", intWriter())
	wb := gowrites.Field("b", intWriter())
	w := gowrites.Merge(wa, wb)

	o := w.WriteObject(gowrites.PairOf(1, 2))
	want := docvalue.Obj(
		docvalue.F("a", docvalue.NumberOf(1)),
		docvalue.F("b", docvalue.NumberOf(2)),
	)
	if !o.Equal(want) {
		t.Fatalf("got=%v want=%v", o.Fields(), want.Fields())
	}
}

func TestMerge_DuplicateKeyLastWinsFirstPosition(t *testing.T) {
	wa := gowrites.Merge(gowrites.Field("a", intWriter()), gowrites.Field("b", intWriter()))
	wb := gowrites.Field("a", intWriter())
	w := gowrites.Merge(wa, wb)

	o := w.WriteObject(gowrites.PairOf(gowrites.PairOf(1, 2), 9))
	// "a" keeps its first position, takes the last-appended value.
	want := docvalue.Obj(
		docvalue.F("a", docvalue.NumberOf(9)),
		docvalue.F("b", docvalue.NumberOf(2)),
	)
	if !o.Equal(want) {
		t.Fatalf("got=%v want=%v", o.Fields(), want.Fields())
	}
}

func TestMerge_AssociativeUpToNesting(t *testing.T) {
	w1 := gowrites.Field("a", intWriter())
	w2 := gowrites.Field("b", intWriter())
	w3 := gowrites.Field("c", intWriter())

	left := gowrites.Merge(gowrites.Merge(w1, w2), w3)
	right := gowrites.Merge(w1, gowrites.Merge(w2, w3))

	lo := left.WriteObject(gowrites.PairOf(gowrites.PairOf(1, 2), 3))
	ro := right.WriteObject(gowrites.PairOf(1, gowrites.PairOf(2, 3)))
	if !lo.Equal(ro) {
		t.Fatalf("association changed field sequence: left=%v right=%v", lo.Fields(), ro.Fields())
	}
	want := docvalue.Obj(
		docvalue.F("a", docvalue.NumberOf(1)),
		docvalue.F("b", docvalue.NumberOf(2)),
		docvalue.F("c", docvalue.NumberOf(3)),
	)
	if !lo.Equal(want) {
		t.Fatalf("got=%v want=%v", lo.Fields(), want.Fields())
	}
}

func TestContraMap_IdentityLaw(t *testing.T) {
	w := stringWriter()
	adapted := gowrites.ContraMap(w, func(s string) string { return s })
	for _, s := range []string{"", "x", "hello"} {
		if !adapted.WriteValue(s).Equal(w.WriteValue(s)) {
			t.Fatalf("identity law violated for %q", s)
		}
	}
}

func TestContraMap_CompositionLaw(t *testing.T) {
	w := stringWriter()
	f := strings.ToUpper
	g := func(n int) string { return strings.Repeat("a", n) }

	stepwise := gowrites.ContraMap(gowrites.ContraMap(w, f), g)
	composed := gowrites.ContraMap(w, func(n int) string { return f(g(n)) })
	for _, n := range []int{0, 1, 3} {
		if !stepwise.WriteValue(n).Equal(composed.WriteValue(n)) {
			t.Fatalf("composition law violated for %d", n)
		}
	}
}

func TestContraMapObject_PreservesObjectGuarantee(t *testing.T) {
	type user struct {
		Name string
		Age  int
	}
	base := gowrites.Merge(gowrites.Field("name", stringWriter()), gowrites.Field("age", intWriter()))
	w := gowrites.ContraMapObject(base, func(u user) gowrites.Pair[string, int] {
		return gowrites.PairOf(u.Name, u.Age)
	})

	o := w.WriteObject(user{Name: "alice", Age: 30})
	want := docvalue.Obj(
		docvalue.F("name", docvalue.Str("alice")),
		docvalue.F("age", docvalue.NumberOf(30)),
	)
	if !o.Equal(want) {
		t.Fatalf("got=%v want=%v", o.Fields(), want.Fields())
	}
	if o.Kind() != docvalue.KindObject {
		t.Fatalf("kind=%v want object", o.Kind())
	}
}

func TestWrite_EntryPoint(t *testing.T) {
	if !gowrites.Write(intWriter(), 42).Equal(docvalue.NumberOf(42)) {
		t.Fatalf("Write disagrees with WriteValue")
	}
}
