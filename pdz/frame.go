// SPDX-License-Identifier: MIT

package pdz

import (
	"encoding/binary"

	"go.uber.org/zap"
)

// RawRecord is one framed unit of the container: a record-type id, its
// resolved (or synthesized) name and an opaque view over the payload bytes.
// RawRecords exist only during the framer → record decoder handoff.
type RawRecord struct {
	Type uint16
	Name string
	Data []byte
}

// blockHeaderSize is the pdz25 block header: a 2-byte record type followed
// by a 4-byte data length, both little-endian.
const blockHeaderSize = 6

// pdz24HeaderSize is the fixed positional file header of the legacy format.
const pdz24HeaderSize = 6

// frameRecords splits the file bytes into raw records per the dialect's
// framing rule. Framing failures are local: the records accumulated so far
// are always returned.
func frameRecords(d Dialect, data []byte, table map[uint16]RecordSchema, log *zap.Logger) []RawRecord {
	switch d {
	case PDZ25:
		return frameBlocks(data, table, log)
	case PDZ24:
		return framePositional(data, table, log)
	default:
		return nil
	}
}

// frameBlocks walks the self-describing pdz25 block stream. It stops, never
// errors, when a header does not fit, when a declared length is zero or
// exceeds the file, or when a payload is truncated; malformed blocks are
// discarded, earlier blocks kept. Unrecognized record types are framed with
// a synthesized name and an opaque payload.
func frameBlocks(data []byte, table map[uint16]RecordSchema, log *zap.Logger) []RawRecord {
	var records []RawRecord
	total := len(data)
	offset := 0

	for offset < total {
		if offset+blockHeaderSize > total {
			log.Debug("insufficient bytes for block header", zap.Int("offset", offset))
			break
		}
		recordType := binary.LittleEndian.Uint16(data[offset:])
		dataLength := int(binary.LittleEndian.Uint32(data[offset+2:]))

		log.Debug("found block",
			zap.Uint16("type", recordType),
			zap.Int("size", dataLength),
			zap.Int("offset", offset))

		if dataLength <= 0 || dataLength > total {
			log.Warn("invalid block size",
				zap.Uint16("type", recordType),
				zap.Int("size", dataLength))
			break
		}

		offset += blockHeaderSize
		if offset+dataLength > total {
			log.Warn("insufficient bytes for block",
				zap.Uint16("type", recordType),
				zap.Int("required", dataLength),
				zap.Int("available", total-offset))
			break
		}

		records = append(records, RawRecord{
			Type: recordType,
			Name: recordNameFor(table, recordType),
			Data: data[offset : offset+dataLength],
		})
		offset += dataLength
	}

	return records
}

// framePositional frames a legacy pdz24 file: the first 6 bytes are the
// file header, the remainder (if any) is the spectrum record. There are no
// length fields; framing is purely positional. Files shorter than the
// header frame nothing, reported as a warning rather than an error.
func framePositional(data []byte, table map[uint16]RecordSchema, log *zap.Logger) []RawRecord {
	if len(data) < pdz24HeaderSize {
		log.Warn("file too short for pdz24 header",
			zap.Int("required", pdz24HeaderSize),
			zap.Int("available", len(data)))
		return nil
	}

	records := []RawRecord{{
		Type: pdz24FileHeaderType,
		Name: recordNameFor(table, pdz24FileHeaderType),
		Data: data[:pdz24HeaderSize],
	}}
	if len(data) > pdz24HeaderSize {
		records = append(records, RawRecord{
			Type: pdz24SpectrumType,
			Name: recordNameFor(table, pdz24SpectrumType),
			Data: data[pdz24HeaderSize:],
		})
	}
	return records
}
