// SPDX-License-Identifier: MIT

package pdz

import (
	"bytes"
	"encoding/json"

	"github.com/elliotchance/orderedmap/v3"
)

// Document is the decoded record tree of one file: a mapping from record
// name to either one *Fields (single occurrence) or []*Fields when the same
// record type occurred more than once (multi-phase data, pdz25 only).
// Record names absent from the file never appear as keys.
type Document struct {
	m *orderedmap.OrderedMap[string, any]
}

func NewDocument() *Document {
	return &Document{m: orderedmap.NewOrderedMap[string, any]()}
}

// Add appends one decoded record. A second occurrence of the same name
// promotes the entry to an ordered sequence; further occurrences append in
// framing order.
func (d *Document) Add(name string, fields *Fields) {
	existing, ok := d.m.Get(name)
	if !ok {
		d.m.Set(name, fields)
		return
	}
	switch prev := existing.(type) {
	case *Fields:
		d.m.Set(name, []*Fields{prev, fields})
	case []*Fields:
		d.m.Set(name, append(prev, fields))
	}
}

// Get returns the raw entry for a record name: *Fields or []*Fields.
// Callers must check the shape.
func (d *Document) Get(name string) (any, bool) {
	return d.m.Get(name)
}

// Record returns the single-occurrence fields for name. It returns false
// for multi-phase entries; use Phases for those.
func (d *Document) Record(name string) (*Fields, bool) {
	v, ok := d.m.Get(name)
	if !ok {
		return nil, false
	}
	f, ok := v.(*Fields)
	return f, ok
}

// Phases returns every occurrence of a record name in framing order. A
// single-occurrence entry yields a one-element slice.
func (d *Document) Phases(name string) []*Fields {
	v, ok := d.m.Get(name)
	if !ok {
		return nil
	}
	switch rec := v.(type) {
	case *Fields:
		return []*Fields{rec}
	case []*Fields:
		return rec
	default:
		return nil
	}
}

func (d *Document) Len() int {
	return d.m.Len()
}

// Names returns the record names present in the file, in framing order of
// first occurrence.
func (d *Document) Names() []string {
	names := make([]string, 0, d.m.Len())
	for name := range d.m.AllFromFront() {
		names = append(names, name)
	}
	return names
}

// MarshalJSON renders the document as a JSON object preserving framing
// order; multi-phase entries render as arrays.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for name, value := range d.m.AllFromFront() {
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
