package tablestream

import (
	"encoding/binary"
	"testing"

	"github.com/mdtables/tablestream/errs"
	"github.com/mdtables/tablestream/format"
	"github.com/mdtables/tablestream/heapsize"
	"github.com/mdtables/tablestream/rowcount"
	"github.com/mdtables/tablestream/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldRecord(t *testing.T) (RecordAccessor, schema.Resolved) {
	t.Helper()

	tbl, ok := format.Lookup(format.Field)
	require.True(t, ok)

	resolved, err := schema.Resolve(tbl, heapsize.Parse(0b101), rowcount.Vector{})
	require.NoError(t, err)

	row := make([]byte, 0, resolved.Stride)
	row = binary.LittleEndian.AppendUint16(row, 0x0006) // Flags
	row = binary.LittleEndian.AppendUint32(row, 0x2A)   // Name (wide string idx)
	row = binary.LittleEndian.AppendUint32(row, 0x00)   // Signature (wide blob idx, absent)

	return RecordAccessor{bytes: row, layout: &resolved}, resolved
}

func TestRecordAccessor_U16(t *testing.T) {
	rec, _ := fieldRecord(t)

	v, err := rec.U16(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0006), v)
}

func TestRecordAccessor_StringIndex(t *testing.T) {
	rec, _ := fieldRecord(t)

	v, err := rec.StringIndex(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x2A), v)
}

func TestRecordAccessor_BlobIndexAbsentIsZero(t *testing.T) {
	rec, _ := fieldRecord(t)

	v, err := rec.BlobIndex(2)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestRecordAccessor_ColumnOutOfBounds(t *testing.T) {
	rec, _ := fieldRecord(t)

	_, err := rec.U16(99)
	assert.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestRecordAccessor_TruncatedSpan(t *testing.T) {
	rec, resolved := fieldRecord(t)
	rec.bytes = rec.bytes[:resolved.Stride-1]

	_, err := rec.U32(2)
	assert.ErrorIs(t, err, errs.ErrTruncated)
}

func TestRecordAccessor_SimpleIndex(t *testing.T) {
	tbl, ok := format.Lookup(format.ClassLayout)
	require.True(t, ok)

	resolved, err := schema.Resolve(tbl, heapsize.Parse(0), rowcount.Vector{})
	require.NoError(t, err)

	row := make([]byte, 0, resolved.Stride)
	row = binary.LittleEndian.AppendUint16(row, 8)   // PackingSize
	row = binary.LittleEndian.AppendUint32(row, 128) // ClassSize
	row = binary.LittleEndian.AppendUint16(row, 5)   // Parent (narrow simple index)

	rec := RecordAccessor{bytes: row, layout: &resolved}

	target, rowNum, err := rec.SimpleIndex(2)
	require.NoError(t, err)
	assert.Equal(t, format.TypeDef, target)
	assert.Equal(t, uint32(5), rowNum)
}

func TestRecordAccessor_Bytes(t *testing.T) {
	rec, resolved := fieldRecord(t)
	assert.Len(t, rec.Bytes(), int(resolved.Stride))
}
