package tablestream

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/mdtables/tablestream/errs"
)

const headerSize = 24

type header struct {
	majorVersion uint8
	minorVersion uint8
	heapSizes    byte
	valid        uint64
	sorted       uint64
}

// parseHeader reads the 24-byte tables-stream header from the front of
// buf. It does not validate the Rows[]/payload region; that is the
// caller's job once the row-count vector is known.
func parseHeader(buf []byte, warnReserved bool) (header, []string, error) {
	if len(buf) < headerSize {
		return header{}, nil, fmt.Errorf("%w: header needs %d bytes, buffer has %d", errs.ErrTruncated, headerSize, len(buf))
	}

	reserved0 := binary.LittleEndian.Uint32(buf[0:4])
	majorVersion := buf[4]
	minorVersion := buf[5]
	heapSizes := buf[6]
	reserved1 := buf[7]
	valid := binary.LittleEndian.Uint64(buf[8:16])
	sorted := binary.LittleEndian.Uint64(buf[16:24])

	var warnings []string

	if reserved0 != 0 || reserved1 != 1 {
		if !warnReserved {
			return header{}, nil, fmt.Errorf("%w: Reserved0=0x%08x Reserved1=0x%02x", errs.ErrReservedFieldMismatch, reserved0, reserved1)
		}

		warnings = append(warnings, fmt.Sprintf("reserved field mismatch: Reserved0=0x%08x Reserved1=0x%02x", reserved0, reserved1))
	}

	h := header{
		majorVersion: majorVersion,
		minorVersion: minorVersion,
		heapSizes:    heapSizes,
		valid:        valid,
		sorted:       sorted,
	}

	return h, warnings, nil
}

func popcount(valid uint64) int {
	return bits.OnesCount64(valid)
}
