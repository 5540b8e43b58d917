// SPDX-License-Identifier: MIT

package pdz

import "fmt"

// FieldKind enumerates the closed set of decoded field representations.
// Record schemas pair each field name with exactly one kind; decoding
// dispatches on the kind, never on strings.
type FieldKind int

const (
	KindU8 FieldKind = iota
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindSkip        // consumes Length bytes, produces no field
	KindBytesFixed  // Length raw bytes, kept verbatim
	KindBytesDyn    // {name}_length raw bytes, kept verbatim
	KindTextFixed   // Length UTF-16LE characters
	KindTextDyn     // {name}_length UTF-16LE characters
	KindTimestamp   // 16-byte SYSTEMTIME, rendered as formatted text
	KindSamples     // CountField 32-bit samples, 4 bytes each
	KindFloatArray  // {name}_length 32-bit floats, flat sequence
	KindGroup       // repeatable sub-record sequence
)

// RepeatSpec is a tagged repeat count: either a literal constant or a
// reference to a previously decoded sibling field, resolved at decode time.
type RepeatSpec struct {
	count int
	field string
}

// Fixed declares a compile-time repeat count.
func Fixed(n int) RepeatSpec { return RepeatSpec{count: n} }

// FieldRef declares a repeat count read from a named sibling field.
func FieldRef(name string) RepeatSpec { return RepeatSpec{field: name} }

// resolve returns the effective count against the decoded siblings. A
// missing or unparsable reference resolves to 0, which omits the group.
func (r RepeatSpec) resolve(siblings *Fields) int {
	if r.field != "" {
		return siblings.Int(r.field)
	}
	return r.count
}

// FieldSchema declares one field of a record: a scalar/variable-length
// primitive or a nested repeatable group.
type FieldSchema struct {
	Name       string
	Kind       FieldKind
	Length     int           // characters for fixed text, bytes for skip and fixed blobs
	CountField string        // sibling naming the sample count (KindSamples)
	Signed     bool          // sample signedness (KindSamples)
	Repeat     RepeatSpec    // KindGroup
	Fields     []FieldSchema // KindGroup sub-schema
}

// RecordSchema is the ordered field list of one record type. Field order is
// positional: every field's offset depends on all preceding fields.
type RecordSchema struct {
	Name   string
	Fields []FieldSchema
}

// Declarative constructors used by the dialect tables.

func U8(name string) FieldSchema  { return FieldSchema{Name: name, Kind: KindU8} }
func U16(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindU16} }
func U32(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindU32} }
func U64(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindU64} }
func I8(name string) FieldSchema  { return FieldSchema{Name: name, Kind: KindI8} }
func I16(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindI16} }
func I32(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindI32} }
func I64(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindI64} }
func F32(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindF32} }
func F64(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindF64} }

// Skip consumes n undocumented bytes without producing a field.
func Skip(n int) FieldSchema { return FieldSchema{Name: "skip", Kind: KindSkip, Length: n} }

// RawBytes captures n bytes verbatim.
func RawBytes(name string, n int) FieldSchema {
	return FieldSchema{Name: name, Kind: KindBytesFixed, Length: n}
}

// Blob captures {name}_length bytes verbatim (embedded image payloads).
func Blob(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindBytesDyn} }

// Text declares a UTF-16LE string of {name}_length characters.
func Text(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindTextDyn} }

// TextN declares a UTF-16LE string of a fixed character count.
func TextN(name string, chars int) FieldSchema {
	return FieldSchema{Name: name, Kind: KindTextFixed, Length: chars}
}

// Timestamp declares a 16-byte SYSTEMTIME structure rendered as
// "YYYY-MM-DD HH:MM:SS" text.
func Timestamp(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindTimestamp} }

// Samples declares an array of unsigned 32-bit samples whose count is read
// from the named sibling field.
func Samples(name, countField string) FieldSchema {
	return FieldSchema{Name: name, Kind: KindSamples, CountField: countField}
}

// SignedSamples declares an array of signed 32-bit samples whose count is
// read from the named sibling field.
func SignedSamples(name, countField string) FieldSchema {
	return FieldSchema{Name: name, Kind: KindSamples, CountField: countField, Signed: true}
}

// Floats declares a flat array of {name}_length 32-bit floats.
func Floats(name string) FieldSchema { return FieldSchema{Name: name, Kind: KindFloatArray} }

// Group declares a repeatable sub-record sequence.
func Group(name string, repeat RepeatSpec, fields ...FieldSchema) FieldSchema {
	return FieldSchema{Name: name, Kind: KindGroup, Repeat: repeat, Fields: fields}
}

// width returns the byte width of a fixed-width scalar kind.
func (f FieldSchema) width() int {
	switch f.Kind {
	case KindU8, KindI8:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32, KindF32:
		return 4
	case KindU64, KindI64, KindF64:
		return 8
	default:
		return 0
	}
}

// tableFor returns the process-wide, read-only schema table of a dialect.
func tableFor(d Dialect) map[uint16]RecordSchema {
	switch d {
	case PDZ25:
		return pdz25Records
	case PDZ24:
		return pdz24Records
	default:
		return nil
	}
}

// recordNameFor resolves a record-type id to its schema name, synthesizing
// a placeholder for types absent from the table. Such records are framed
// with an opaque payload and decode to an empty field map.
func recordNameFor(table map[uint16]RecordSchema, recordType uint16) string {
	if schema, ok := table[recordType]; ok {
		return schema.Name
	}
	return fmt.Sprintf("Unknown Record Type %d", recordType)
}
