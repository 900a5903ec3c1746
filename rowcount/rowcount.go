// Package rowcount builds the total mapping from table number to row
// count, described by spec as the Row-Count Vector: rowCount[t] = 0 when
// bit t of Valid is clear, otherwise the next entry of the packed Rows[]
// prefix.
package rowcount

import (
	"fmt"
	"math/bits"

	"github.com/mdtables/tablestream/errs"
	"github.com/mdtables/tablestream/format"
)

// Vector is a total mapping from format.TableNumber to row count.
type Vector [format.MaxTableNumber]uint32

// Build constructs a Vector from the header's Valid bitmask and the
// packed Rows[] prefix that follows it. len(rows) should equal
// popcount(valid): Build returns ErrTruncated if rows has fewer entries
// than valid has bits set, and ignores any entries beyond that.
//
// Build returns ErrUnknownTableBit if valid has a bit set for a table
// number the catalog does not define.
func Build(valid uint64, rows []uint32) (Vector, error) {
	var v Vector

	next := 0
	for t := 0; t < format.MaxTableNumber; t++ {
		bit := uint64(1) << uint(t)
		if valid&bit == 0 {
			continue
		}

		if _, ok := format.Lookup(format.TableNumber(t)); !ok {
			return Vector{}, fmt.Errorf("%w: table number 0x%02x", errs.ErrUnknownTableBit, t)
		}

		if next >= len(rows) {
			return Vector{}, fmt.Errorf("%w: valid mask expects a row count for table %s at Rows[%d], got %d entries",
				errs.ErrTruncated, format.TableNumber(t), next, len(rows))
		}

		v[t] = rows[next]
		next++
	}

	return v, nil
}

// Get returns the row count for table t, or 0 if t is not present.
func (v Vector) Get(t format.TableNumber) uint32 {
	if int(t) >= len(v) {
		return 0
	}

	return v[t]
}

// Max returns the largest row count among the given tables, ignoring
// NoTarget entries. Used by the coded-index width rule.
func (v Vector) Max(ts ...format.TableNumber) uint32 {
	var max uint32
	for _, t := range ts {
		if t == format.NoTarget {
			continue
		}

		if c := v.Get(t); c > max {
			max = c
		}
	}

	return max
}

// PopCount counts the set bits below bit position t in valid; this is the
// index into Rows[] a valid table t reads its row count from.
func PopCount(valid uint64, t int) int {
	if t >= 64 {
		return bits.OnesCount64(valid)
	}

	mask := (uint64(1) << uint(t)) - 1

	return bits.OnesCount64(valid & mask)
}
