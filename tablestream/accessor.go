package tablestream

import (
	"encoding/binary"
	"fmt"

	"github.com/mdtables/tablestream/codedindex"
	"github.com/mdtables/tablestream/errs"
	"github.com/mdtables/tablestream/format"
	"github.com/mdtables/tablestream/schema"
)

// RecordAccessor decodes one row's columns against its table's resolved
// schema. It borrows the row's byte span; it never allocates.
type RecordAccessor struct {
	bytes  []byte
	layout *schema.Resolved
}

func (r RecordAccessor) column(col int) (schema.ColumnLayout, error) {
	if col < 0 || col >= len(r.layout.Columns) {
		return schema.ColumnLayout{}, fmt.Errorf("%w: column %d, table has %d columns", errs.ErrOutOfBounds, col, len(r.layout.Columns))
	}

	c := r.layout.Columns[col]
	if int(c.Offset)+int(c.Width) > len(r.bytes) {
		return schema.ColumnLayout{}, fmt.Errorf("%w: column %s at offset %d width %d exceeds row span of %d bytes",
			errs.ErrTruncated, c.Name, c.Offset, c.Width, len(r.bytes))
	}

	return c, nil
}

func (r RecordAccessor) uint(col int) (uint64, uint8, error) {
	c, err := r.column(col)
	if err != nil {
		return 0, 0, err
	}

	span := r.bytes[c.Offset : c.Offset+uint16(c.Width)]

	switch c.Width {
	case 1:
		return uint64(span[0]), c.Width, nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(span)), c.Width, nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(span)), c.Width, nil
	case 8:
		return binary.LittleEndian.Uint64(span), c.Width, nil
	default:
		return 0, 0, fmt.Errorf("%w: column %s has unsupported width %d", errs.ErrSchemaMalformed, c.Name, c.Width)
	}
}

// U8 reads column col as an unsigned constant. Like U16, U32 and U64, it
// reads the column at its resolved width; it does not check that the
// width is 1 byte.
func (r RecordAccessor) U8(col int) (uint64, error) {
	v, _, err := r.uint(col)
	return v, err
}

// U16 reads column col as an unsigned constant at its resolved width; it
// does not check that the width is 2 bytes.
func (r RecordAccessor) U16(col int) (uint64, error) {
	v, _, err := r.uint(col)
	return v, err
}

// U32 reads column col as an unsigned constant at its resolved width; it
// does not check that the width is 4 bytes.
func (r RecordAccessor) U32(col int) (uint64, error) {
	v, _, err := r.uint(col)
	return v, err
}

// U64 reads column col as an unsigned constant at its resolved width; it
// does not check that the width is 8 bytes.
func (r RecordAccessor) U64(col int) (uint64, error) {
	v, _, err := r.uint(col)
	return v, err
}

func (r RecordAccessor) heapIndex(col int) (uint32, error) {
	v, _, err := r.uint(col)
	if err != nil {
		return 0, err
	}

	return uint32(v), nil
}

// StringIndex reads column col as a width-normalised index into #Strings.
func (r RecordAccessor) StringIndex(col int) (uint32, error) { return r.heapIndex(col) }

// GUIDIndex reads column col as a width-normalised index into #GUID.
func (r RecordAccessor) GUIDIndex(col int) (uint32, error) { return r.heapIndex(col) }

// BlobIndex reads column col as a width-normalised index into #Blob.
func (r RecordAccessor) BlobIndex(col int) (uint32, error) { return r.heapIndex(col) }

// SimpleIndex reads column col as a 1-based row number into a single
// target table, returning that target table number verbatim.
func (r RecordAccessor) SimpleIndex(col int) (format.TableNumber, uint32, error) {
	c, err := r.column(col)
	if err != nil {
		return 0, 0, err
	}

	if c.Kind != format.KindSimpleIndex {
		return 0, 0, fmt.Errorf("%w: column %s is not a simple index (kind %d)", errs.ErrSchemaMalformed, c.Name, c.Kind)
	}

	v, _, err := r.uint(col)
	if err != nil {
		return 0, 0, err
	}

	return c.Target, uint32(v), nil
}

// CodedIndex reads column col as a tagged reference, resolving the tag to
// its target table and returning the 1-based row number.
func (r RecordAccessor) CodedIndex(col int) (format.TableNumber, uint32, error) {
	c, err := r.column(col)
	if err != nil {
		return 0, 0, err
	}

	if c.Kind != format.KindCodedIndex || c.Family == nil {
		return 0, 0, fmt.Errorf("%w: column %s is not a coded index (kind %d)", errs.ErrSchemaMalformed, c.Name, c.Kind)
	}

	v, _, err := r.uint(col)
	if err != nil {
		return 0, 0, err
	}

	target, row, err := codedindex.Target(c.Family, uint32(v))
	if err != nil {
		return 0, 0, err
	}

	return target, row, nil
}

// Bytes returns the raw stride-byte span backing this row.
func (r RecordAccessor) Bytes() []byte {
	return r.bytes
}
