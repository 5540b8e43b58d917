// SPDX-License-Identifier: MIT

// Package pdz decodes Bruker PDZ instrument-data containers into a
// structured record tree. Two on-disk dialects are supported, selected by
// the version tag in the file's first two bytes: the legacy fixed-layout
// pdz24 format and the self-describing block stream of pdz25. Records are
// decoded against declarative per-dialect schema tables; field lengths and
// repeat counts may reference previously decoded sibling fields.
package pdz

import "encoding/binary"

// Dialect identifies one of the supported container-format variants.
type Dialect int

const (
	DialectUnknown Dialect = iota
	PDZ24                  // legacy fixed two-record layout, version code 257
	PDZ25                  // self-describing block stream, version code 25
)

// Version codes carried in the first two bytes of a PDZ file.
const (
	versionCodePDZ25 = 25
	versionCodePDZ24 = 257
)

// versionSize is the width of the leading version tag in bytes.
const versionSize = 2

func (d Dialect) String() string {
	switch d {
	case PDZ24:
		return "pdz24"
	case PDZ25:
		return "pdz25"
	default:
		return "unknown"
	}
}

// DetectDialect inspects the leading version tag and returns the matching
// dialect. Unknown version codes are a hard failure; nothing downstream can
// frame a file whose dialect is not recognized.
func DetectDialect(data []byte) (Dialect, error) {
	if len(data) < versionSize {
		return DialectUnknown, &InsufficientBytesError{
			Field:     "version",
			Required:  versionSize,
			Available: len(data),
		}
	}
	code := binary.LittleEndian.Uint16(data)
	switch code {
	case versionCodePDZ25:
		return PDZ25, nil
	case versionCodePDZ24:
		return PDZ24, nil
	default:
		return DialectUnknown, &UnrecognizedDialectError{Version: code}
	}
}
