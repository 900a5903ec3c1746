// Package dump renders a decoded table's rows into text, for test
// fixtures, benchmarks, and diagnostics. It is never on the hot path of
// Open, Table, or Iter.
package dump

import (
	"strconv"

	"github.com/mdtables/tablestream/format"
	"github.com/mdtables/tablestream/internal/pool"
	"github.com/mdtables/tablestream/tablestream"
)

// Table renders every row of view as one line per row, tab-separated
// column values, using a pooled buffer to avoid allocating per call.
func Table(view tablestream.TableView) string {
	bb := pool.GetDumpBuffer()
	defer pool.PutDumpBuffer(bb)

	tbl, ok := format.Lookup(view.Number)

	for i := uint32(0); i < view.RowCount; i++ {
		row, err := view.Row(i)
		if err != nil {
			bb.Write([]byte("<error: " + err.Error() + ">\n"))
			continue
		}

		writeRow(bb, tbl, ok, row)
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return string(out)
}

func writeRow(bb *pool.ByteBuffer, tbl *format.Table, hasSchema bool, row tablestream.RecordAccessor) {
	columns := len(row.Bytes())
	if hasSchema {
		columns = len(tbl.Columns)
	}

	for c := 0; c < columns; c++ {
		if c > 0 {
			bb.Write([]byte("\t"))
		}

		writeColumn(bb, tbl, hasSchema, row, c)
	}

	bb.Write([]byte("\n"))
}

func writeColumn(bb *pool.ByteBuffer, tbl *format.Table, hasSchema bool, row tablestream.RecordAccessor, c int) {
	if !hasSchema {
		bb.Write([]byte("?"))
		return
	}

	kind := tbl.Columns[c].Kind

	switch kind {
	case format.KindConstant:
		v, err := row.U64(c)
		writeUintOrErr(bb, v, err)
	case format.KindHeapIndex:
		v, err := row.StringIndex(c) // width-normalised regardless of heap kind
		writeUintOrErr(bb, uint64(v), err)
	case format.KindSimpleIndex:
		target, v, err := row.SimpleIndex(c)
		if err != nil {
			bb.Write([]byte(err.Error()))
			return
		}

		bb.Write([]byte(tbl.Columns[c].Name + "->" + target.String() + "#" + strconv.FormatUint(uint64(v), 10)))
	case format.KindCodedIndex:
		target, v, err := row.CodedIndex(c)
		if err != nil {
			bb.Write([]byte(err.Error()))
			return
		}

		bb.Write([]byte(tbl.Columns[c].Name + "->" + target.String() + "#" + strconv.FormatUint(uint64(v), 10)))
	}
}

func writeUintOrErr(bb *pool.ByteBuffer, v uint64, err error) {
	if err != nil {
		bb.Write([]byte(err.Error()))
		return
	}

	bb.Write([]byte(strconv.FormatUint(v, 10)))
}
