// Package codedindex decodes and encodes CLI/ECMA-335 coded-index cell
// values: a tagged union packing a target-table tag into the low bits and
// a 1-based row number into the remaining bits.
package codedindex

import (
	"fmt"

	"github.com/mdtables/tablestream/endian"
	"github.com/mdtables/tablestream/errs"
	"github.com/mdtables/tablestream/format"
)

// Decode splits a coded-index cell value into its tag and row number. The
// tag identifies which of the family's Targets the row number refers
// into; row is 1-based, with 0 meaning the reference is absent.
func Decode(family *format.CodedIndexFamily, v uint32) (tag int, row uint32, err error) {
	mask := uint32(1)<<family.TagBits - 1
	tag = int(v & mask)

	if _, ok := family.Target(tag); !ok {
		return 0, 0, fmt.Errorf("%w: family %s tag %d", errs.ErrBadCodedIndex, family.Name, tag)
	}

	row = v >> family.TagBits

	return tag, row, nil
}

// Target resolves the table a decoded coded-index cell refers to.
func Target(family *format.CodedIndexFamily, v uint32) (format.TableNumber, uint32, error) {
	tag, row, err := Decode(family, v)
	if err != nil {
		return 0, 0, err
	}

	target, _ := family.Target(tag)

	return target, row, nil
}

// Encode packs a tag and row number into a coded-index cell value.
func Encode(family *format.CodedIndexFamily, tag int, row uint32) (uint32, error) {
	if _, ok := family.Target(tag); !ok {
		return 0, fmt.Errorf("%w: family %s tag %d", errs.ErrBadCodedIndex, family.Name, tag)
	}

	return row<<family.TagBits | uint32(tag), nil
}

// AppendEncoded appends the little-endian bytes of Encode's result to buf,
// growing it as needed. It exists to give round-trip tests and any future
// stream writer a zero-copy path through the endian.EndianEngine
// abstraction rather than a bare encoding/binary call.
func AppendEncoded(buf []byte, family *format.CodedIndexFamily, tag int, row uint32) ([]byte, error) {
	v, err := Encode(family, tag, row)
	if err != nil {
		return nil, err
	}

	return endian.LittleEndian.AppendUint32(buf, v), nil
}
