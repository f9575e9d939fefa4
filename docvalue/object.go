package docvalue

// Field is one key/value entry of an Object.
type Field struct {
	Name  string
	Value Value
}

// F builds a Field.
func F(name string, v Value) Field { return Field{Name: name, Value: v} }

// Object is the object variant: an ordered field sequence with unique keys.
// Insertion order is significant for serialization output. Set on an existing
// key replaces the value in place, keeping the position of the first
// occurrence (LinkedHashMap put semantics); the last-appended value wins.
type Object struct {
	fields []Field
	index  map[string]int
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

// Obj builds an Object by applying Set for each field in order.
func Obj(fields ...Field) *Object {
	o := NewObject()
	for _, f := range fields {
		o.Set(f.Name, f.Value)
	}
	return o
}

func (*Object) Kind() Kind { return KindObject }

func (o *Object) Equal(other Value) bool {
	oo, ok := other.(*Object)
	if !ok || len(oo.fields) != len(o.fields) {
		return false
	}
	for i, f := range o.fields {
		of := oo.fields[i]
		if of.Name != f.Name || !f.Value.Equal(of.Value) {
			return false
		}
	}
	return true
}

// Set appends the field, or replaces the value in place when the key already
// exists. Returns o for chaining.
func (o *Object) Set(name string, v Value) *Object {
	if o.index == nil {
		o.index = map[string]int{}
		for i, f := range o.fields {
			o.index[f.Name] = i
		}
	}
	if i, ok := o.index[name]; ok {
		o.fields[i].Value = v
		return o
	}
	o.index[name] = len(o.fields)
	o.fields = append(o.fields, Field{Name: name, Value: v})
	return o
}

// Get returns the value for name, if present.
func (o *Object) Get(name string) (Value, bool) {
	if o.index != nil {
		if i, ok := o.index[name]; ok {
			return o.fields[i].Value, true
		}
		return nil, false
	}
	for _, f := range o.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Fields returns the field sequence in insertion order. The slice is a copy;
// mutating it does not affect o.
func (o *Object) Fields() []Field {
	out := make([]Field, len(o.fields))
	copy(out, o.fields)
	return out
}

// Len returns the number of fields.
func (o *Object) Len() int { return len(o.fields) }
