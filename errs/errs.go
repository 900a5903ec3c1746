// Package errs defines the sentinel errors returned by the tablestream
// packages. Callers should compare against these with errors.Is; call sites
// that need to attach a row, table, or column identifier wrap them with
// fmt.Errorf("%w: ...", errs.ErrX) rather than introducing new error types.
package errs

import "errors"

var (
	// ErrTruncated indicates the buffer is shorter than the stream header,
	// or shorter than the total payload size the resolved schema computed.
	ErrTruncated = errors.New("tablestream: buffer truncated")

	// ErrReservedFieldMismatch indicates Reserved0 != 0 or Reserved1 != 1
	// in the stream header.
	ErrReservedFieldMismatch = errors.New("tablestream: reserved field mismatch")

	// ErrUnknownTableBit indicates the Valid bitmask has a bit set for a
	// table number absent from the table catalog.
	ErrUnknownTableBit = errors.New("tablestream: valid bitmask references unknown table")

	// ErrSchemaMalformed indicates a catalog column references a table
	// number that is not itself present in the catalog. This is a
	// programming error in the catalog, not a data error.
	ErrSchemaMalformed = errors.New("tablestream: catalog schema malformed")

	// ErrOutOfBounds indicates a row index >= a table's row count, or a
	// column index outside a table's column list.
	ErrOutOfBounds = errors.New("tablestream: row index out of bounds")

	// ErrBadCodedIndex indicates a decoded coded-index tag is out of range
	// for its family's target table list.
	ErrBadCodedIndex = errors.New("tablestream: coded index tag out of range")
)
