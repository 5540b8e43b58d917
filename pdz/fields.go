// SPDX-License-Identifier: MIT

package pdz

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/elliotchance/orderedmap/v3"
)

// Fields is the decoded field map of one record (or one group iteration).
// Insertion order matches schema declaration order. Values are one of a
// closed set of kinds: uint64, int64, float64 (scalars), string (text and
// formatted timestamps), []byte (raw blobs), []uint32, []int32, []float32
// (sample arrays) and []*Fields (repeatable group output).
type Fields struct {
	m *orderedmap.OrderedMap[string, any]
}

func NewFields() *Fields {
	return &Fields{m: orderedmap.NewOrderedMap[string, any]()}
}

// Set stores a decoded value under name, replacing any earlier value while
// keeping its original position.
func (f *Fields) Set(name string, value any) {
	f.m.Set(name, value)
}

// Get returns the raw decoded value for name.
func (f *Fields) Get(name string) (any, bool) {
	return f.m.Get(name)
}

func (f *Fields) Len() int {
	return f.m.Len()
}

// Names returns the field names in insertion order.
func (f *Fields) Names() []string {
	names := make([]string, 0, f.m.Len())
	for name := range f.m.AllFromFront() {
		names = append(names, name)
	}
	return names
}

// All iterates name/value pairs in insertion order.
func (f *Fields) All() func(yield func(string, any) bool) {
	return f.m.AllFromFront()
}

// Int resolves a sibling field as a non-negative integer. Missing or
// unparsable values resolve to 0; dynamic lengths and repeat counts rely on
// this default rather than failing.
func (f *Fields) Int(name string) int {
	v, ok := f.m.Get(name)
	if !ok {
		return 0
	}
	n, ok := toInt(v)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// Float64 resolves a sibling field as a float64, defaulting to 0.
func (f *Fields) Float64(name string) float64 {
	v, ok := f.m.Get(name)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case uint64:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// Text returns a string field, or "" when absent or of another kind.
func (f *Fields) Text(name string) string {
	if v, ok := f.m.Get(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Bytes returns a raw blob field, or nil when absent or of another kind.
func (f *Fields) Bytes(name string) []byte {
	if v, ok := f.m.Get(name); ok {
		if b, ok := v.([]byte); ok {
			return b
		}
	}
	return nil
}

// Groups returns the iterations of a repeatable group field.
func (f *Fields) Groups(name string) []*Fields {
	if v, ok := f.m.Get(name); ok {
		if g, ok := v.([]*Fields); ok {
			return g
		}
	}
	return nil
}

// MarshalJSON renders the fields as a JSON object preserving insertion
// order. Raw blobs follow encoding/json's base64 convention.
func (f *Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for name, value := range f.m.AllFromFront() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
