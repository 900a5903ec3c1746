// Package schema resolves a catalog Table's column list into concrete
// byte offsets and widths, given the stream's heap sizes and row-count
// vector. Resolution happens once, at Open; row decoding then only ever
// does offset arithmetic.
package schema

import (
	"fmt"

	"github.com/mdtables/tablestream/errs"
	"github.com/mdtables/tablestream/format"
	"github.com/mdtables/tablestream/heapsize"
	"github.com/mdtables/tablestream/rowcount"
)

// ColumnLayout is a single column's resolved position within a row. Target
// and Family carry over from the source format.Column so the Record
// Accessor can resolve simple and coded index references without a second
// catalog lookup.
type ColumnLayout struct {
	Name   string
	Kind   format.ColumnKind
	Width  uint8
	Offset uint16
	Target format.TableNumber
	Family *format.CodedIndexFamily
}

// Resolved is a table's row layout: the ordered column layouts and the
// total row stride in bytes.
type Resolved struct {
	Columns []ColumnLayout
	Stride  uint16
}

// simpleIndexWidth returns 4 if the target table's row count requires a
// wide index (>= 2^16 rows), else 2.
func simpleIndexWidth(target format.TableNumber, rows rowcount.Vector) uint8 {
	if target == format.NoTarget {
		return 2
	}

	if rows.Get(target) >= (1 << 16) {
		return 4
	}

	return 2
}

// codedIndexWidth returns 4 if the largest target table's row count does
// not fit in the bits left after the family's tag, else 2.
func codedIndexWidth(family *format.CodedIndexFamily, rows rowcount.Vector) uint8 {
	max := rows.Max(family.Targets...)
	limit := uint32(1) << uint(16-family.TagBits)

	if max >= limit {
		return 4
	}

	return 2
}

// Resolve computes the row layout for one table.
func Resolve(table *format.Table, sizes heapsize.Sizes, rows rowcount.Vector) (Resolved, error) {
	if table == nil {
		return Resolved{}, fmt.Errorf("%w: nil table", errs.ErrSchemaMalformed)
	}

	columns := make([]ColumnLayout, 0, len(table.Columns))

	var offset uint16
	for _, col := range table.Columns {
		var width uint8

		switch col.Kind {
		case format.KindConstant:
			width = col.Width
		case format.KindHeapIndex:
			width = sizes.Width(col.Heap)
		case format.KindSimpleIndex:
			if _, ok := format.Lookup(col.Target); !ok && col.Target != format.NoTarget {
				return Resolved{}, fmt.Errorf("%w: table %s column %s targets undefined table %s",
					errs.ErrSchemaMalformed, table.Name, col.Name, col.Target)
			}

			width = simpleIndexWidth(col.Target, rows)
		case format.KindCodedIndex:
			if col.Family == nil {
				return Resolved{}, fmt.Errorf("%w: table %s column %s has no coded-index family",
					errs.ErrSchemaMalformed, table.Name, col.Name)
			}

			for _, target := range col.Family.Targets {
				if target == format.NoTarget {
					continue
				}

				if _, ok := format.Lookup(target); !ok {
					return Resolved{}, fmt.Errorf("%w: table %s column %s family %s targets undefined table %s",
						errs.ErrSchemaMalformed, table.Name, col.Name, col.Family.Name, target)
				}
			}

			width = codedIndexWidth(col.Family, rows)
		default:
			return Resolved{}, fmt.Errorf("%w: table %s column %s has unknown column kind %d",
				errs.ErrSchemaMalformed, table.Name, col.Name, col.Kind)
		}

		columns = append(columns, ColumnLayout{
			Name:   col.Name,
			Kind:   col.Kind,
			Width:  width,
			Offset: offset,
			Target: col.Target,
			Family: col.Family,
		})

		offset += uint16(width)
	}

	return Resolved{Columns: columns, Stride: offset}, nil
}

// ResolveAll resolves every table the catalog defines, whether or not it
// is present in rows, and returns the layouts keyed by table number. The
// tables-stream reader calls it (directly or through the schema cache)
// once per Open.
func ResolveAll(sizes heapsize.Sizes, rows rowcount.Vector) (map[format.TableNumber]Resolved, error) {
	out := make(map[format.TableNumber]Resolved, len(format.All()))

	for _, table := range format.All() {
		resolved, err := Resolve(table, sizes, rows)
		if err != nil {
			return nil, err
		}

		out[table.Number] = resolved
	}

	return out, nil
}
