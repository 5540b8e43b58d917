// SPDX-License-Identifier: MIT

package pdz

import "fmt"

// UnrecognizedDialectError reports a version code that matches no supported
// dialect. It aborts the whole parse.
type UnrecognizedDialectError struct {
	Version uint16
}

func (e *UnrecognizedDialectError) Error() string {
	return fmt.Sprintf("unrecognized PDZ version code: %d", e.Version)
}

// InsufficientBytesError reports a field or header that needs more bytes
// than remain in its record. It is local: the record decoder keeps the
// fields decoded so far and stops, it never fails the whole file.
type InsufficientBytesError struct {
	Field     string
	Required  int
	Available int
}

func (e *InsufficientBytesError) Error() string {
	return fmt.Sprintf("insufficient bytes for field %q: required %d, available %d",
		e.Field, e.Required, e.Available)
}
