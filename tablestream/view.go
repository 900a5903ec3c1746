package tablestream

import (
	"fmt"

	"github.com/mdtables/tablestream/errs"
	"github.com/mdtables/tablestream/format"
	"github.com/mdtables/tablestream/schema"
)

// TableView exposes one table's row count and borrowed byte range, plus
// its resolved schema for row decoding.
type TableView struct {
	Number   format.TableNumber
	RowCount uint32

	bytes  []byte
	layout schema.Resolved
}

// Row returns the i-th record as a RecordAccessor, or ErrOutOfBounds if
// i >= RowCount.
func (v TableView) Row(i uint32) (RecordAccessor, error) {
	if i >= v.RowCount {
		return RecordAccessor{}, fmt.Errorf("%w: table %s row %d, rowCount %d", errs.ErrOutOfBounds, v.Number, i, v.RowCount)
	}

	stride := int(v.layout.Stride)
	start := int(i) * stride
	end := start + stride

	return RecordAccessor{bytes: v.bytes[start:end], layout: &v.layout}, nil
}

// Bytes returns the table's full borrowed byte range, RowCount*Stride
// bytes long.
func (v TableView) Bytes() []byte {
	return v.bytes
}

// Stride returns the resolved per-row byte width.
func (v TableView) Stride() uint16 {
	return v.layout.Stride
}
