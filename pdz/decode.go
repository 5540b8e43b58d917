// SPDX-License-Identifier: MIT

package pdz

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// wideText decodes UTF-16 with an optional BOM, little-endian by default,
// matching the on-disk encoding of every string field in both dialects.
var wideText = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// decodeField decodes one primitive field at the context cursor, advancing
// it by the bytes consumed. Siblings already decoded for the same record
// (or group iteration) supply dynamic lengths and counts. A nil value with
// a nil error means the field consumed bytes but produces no entry (skip).
// Groups are dispatched separately; see decodeGroup.
func decodeField(field FieldSchema, ctx *decodeContext, siblings *Fields) (any, error) {
	switch field.Kind {
	case KindU8, KindU16, KindU32, KindU64:
		data, err := ctx.read(field.Name, field.width())
		if err != nil {
			return nil, err
		}
		return decodeUint(data), nil

	case KindI8, KindI16, KindI32, KindI64:
		data, err := ctx.read(field.Name, field.width())
		if err != nil {
			return nil, err
		}
		return decodeSint(data), nil

	case KindF32:
		data, err := ctx.read(field.Name, 4)
		if err != nil {
			return nil, err
		}
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(data))), nil

	case KindF64:
		data, err := ctx.read(field.Name, 8)
		if err != nil {
			return nil, err
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(data)), nil

	case KindSkip:
		if _, err := ctx.read(field.Name, field.Length); err != nil {
			return nil, err
		}
		return nil, nil

	case KindBytesFixed:
		return ctx.read(field.Name, field.Length)

	case KindBytesDyn:
		length := siblings.Int(field.Name + "_length")
		return ctx.read(field.Name, length)

	case KindTextFixed:
		return decodeWideString(field, field.Length, ctx)

	case KindTextDyn:
		length := siblings.Int(field.Name + "_length")
		return decodeWideString(field, length, ctx)

	case KindTimestamp:
		return decodeSystemTime(field, ctx)

	case KindSamples:
		return decodeSamples(field, ctx, siblings)

	case KindFloatArray:
		return decodeFloatArray(field, ctx, siblings)

	default:
		return nil, fmt.Errorf("unknown field kind: %d", field.Kind)
	}
}

// decodeUint interprets 1, 2, 4 or 8 little-endian bytes.
func decodeUint(data []byte) uint64 {
	switch len(data) {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(data))
	case 4:
		return uint64(binary.LittleEndian.Uint32(data))
	case 8:
		return binary.LittleEndian.Uint64(data)
	default:
		return 0
	}
}

// decodeSint interprets 1, 2, 4 or 8 little-endian bytes as two's
// complement.
func decodeSint(data []byte) int64 {
	switch len(data) {
	case 1:
		return int64(int8(data[0]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(data)))
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(data)))
	case 8:
		return int64(binary.LittleEndian.Uint64(data))
	default:
		return 0
	}
}

// decodeWideString consumes chars*2 bytes and decodes them as UTF-16LE,
// trimming null padding from both ends.
func decodeWideString(field FieldSchema, chars int, ctx *decodeContext) (any, error) {
	data, err := ctx.read(field.Name, chars*2)
	if err != nil {
		return nil, err
	}
	out, err := wideText.NewDecoder().Bytes(data)
	if err != nil {
		return nil, &InsufficientBytesError{Field: field.Name, Required: chars * 2, Available: ctx.remaining()}
	}
	return strings.Trim(string(out), "\x00"), nil
}

// decodeSystemTime consumes a 16-byte Windows SYSTEMTIME structure (eight
// unsigned 16-bit fields) and renders it as text. Day-of-week and
// milliseconds are discarded; the field's decoded representation is the
// formatted string, not a structured date.
func decodeSystemTime(field FieldSchema, ctx *decodeContext) (any, error) {
	data, err := ctx.read(field.Name, 16)
	if err != nil {
		return nil, err
	}
	var parts [8]uint16
	for i := range parts {
		parts[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	year, month, day := parts[0], parts[1], parts[3]
	hour, minute, second := parts[4], parts[5], parts[6]
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d", year, month, day, hour, minute, second), nil
}

// decodeSamples consumes count*4 bytes as 32-bit spectrum samples, where
// count is read from the schema-declared sibling field (channels in pdz25,
// num_channels in pdz24).
func decodeSamples(field FieldSchema, ctx *decodeContext, siblings *Fields) (any, error) {
	count := siblings.Int(field.CountField)
	data, err := ctx.read(field.Name, count*4)
	if err != nil {
		return nil, err
	}
	if field.Signed {
		samples := make([]int32, count)
		for i := range samples {
			samples[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
		}
		return samples, nil
	}
	samples := make([]uint32, count)
	for i := range samples {
		samples[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return samples, nil
}

// decodeFloatArray consumes {name}_length 32-bit floats as one flat
// sequence. The pdz25 schema documents these as interleaved x/y pairs but
// declares the raw length as the float count; the flat behavior is kept.
func decodeFloatArray(field FieldSchema, ctx *decodeContext, siblings *Fields) (any, error) {
	count := siblings.Int(field.Name + "_length")
	data, err := ctx.read(field.Name, count*4)
	if err != nil {
		return nil, err
	}
	floats := make([]float32, count)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats, nil
}
