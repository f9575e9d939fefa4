package docvalue

import (
	"bytes"
	stdjson "encoding/json"

	json "github.com/goccy/go-json"
)

// EncodeJSON renders v as compact JSON. Object field order follows insertion
// order; Number literals are emitted verbatim.
func EncodeJSON(v Value) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (b Bool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	// The zero Number carries no literal; emit 0 rather than invalid JSON.
	if n == "" {
		return []byte("0"), nil
	}
	return json.Marshal(stdjson.Number(n))
}

func (s Str) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (a Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := EncodeJSON(e)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		b, err := EncodeJSON(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
