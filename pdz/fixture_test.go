// SPDX-License-Identifier: MIT

package pdz

import (
	"encoding/binary"
	"math"
	"unicode/utf16"
)

// payload builds little-endian byte fixtures for tests.
type payload struct {
	b []byte
}

func (p *payload) u8(v uint8) *payload {
	p.b = append(p.b, v)
	return p
}

func (p *payload) u16(v uint16) *payload {
	p.b = binary.LittleEndian.AppendUint16(p.b, v)
	return p
}

func (p *payload) u32(v uint32) *payload {
	p.b = binary.LittleEndian.AppendUint32(p.b, v)
	return p
}

func (p *payload) u64(v uint64) *payload {
	p.b = binary.LittleEndian.AppendUint64(p.b, v)
	return p
}

func (p *payload) i16(v int16) *payload { return p.u16(uint16(v)) }
func (p *payload) i32(v int32) *payload { return p.u32(uint32(v)) }

func (p *payload) f32(v float32) *payload { return p.u32(math.Float32bits(v)) }
func (p *payload) f64(v float64) *payload { return p.u64(math.Float64bits(v)) }

func (p *payload) raw(data ...byte) *payload {
	p.b = append(p.b, data...)
	return p
}

// wstr appends s as UTF-16LE without a BOM.
func (p *payload) wstr(s string) *payload {
	for _, u := range utf16.Encode([]rune(s)) {
		p.u16(u)
	}
	return p
}

// systime appends a 16-byte SYSTEMTIME structure.
func (p *payload) systime(year, month, dayOfWeek, day, hour, minute, second, millis uint16) *payload {
	return p.u16(year).u16(month).u16(dayOfWeek).u16(day).u16(hour).u16(minute).u16(second).u16(millis)
}

func (p *payload) bytes() []byte {
	return p.b
}

// block frames data as one pdz25 block: type id, declared length, payload.
func block(recordType uint16, data []byte) []byte {
	out := (&payload{}).u16(recordType).u32(uint32(len(data))).bytes()
	return append(out, data...)
}

// pdz25File concatenates blocks into a file image. Callers make the first
// block type 25 when the file must pass dialect detection.
func pdz25File(blocks ...[]byte) []byte {
	var out []byte
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out
}

// fileHeaderBlock is a minimal valid pdz25 File Header block, which also
// carries the version tag in its leading record-type bytes.
func fileHeaderBlock() []byte {
	data := (&payload{}).wstr("pdz25").u32(7).bytes()
	return block(25, data)
}
