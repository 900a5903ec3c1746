// Package tablestream implements the CLI/ECMA-335 "#~"/"#-" tables stream
// decoder: a zero-copy reader over a borrowed byte buffer that resolves
// each present table's row layout once, at Open, and then offers typed,
// lazy per-row field access via RecordAccessor.
package tablestream

import (
	"encoding/binary"
	"fmt"

	"github.com/mdtables/tablestream/errs"
	"github.com/mdtables/tablestream/format"
	"github.com/mdtables/tablestream/heapreader"
	"github.com/mdtables/tablestream/heapsize"
	"github.com/mdtables/tablestream/internal/options"
	"github.com/mdtables/tablestream/internal/schemacache"
	"github.com/mdtables/tablestream/rowcount"
	"github.com/mdtables/tablestream/schema"
)

var defaultCache = schemacache.New()

// Reader is an opened tables stream. It borrows buf for its entire
// lifetime; the caller must keep buf alive at least as long as the
// Reader and any TableView or RecordAccessor derived from it.
type Reader struct {
	majorVersion uint8
	minorVersion uint8
	valid        uint64
	sorted       uint64
	rows         rowcount.Vector
	schemas      map[format.TableNumber]schema.Resolved
	warnings     []string

	present []format.TableNumber // ascending; may be a prefix of valid's bits under lenient mode
	views   map[format.TableNumber]TableView
}

// Open parses buf as a "#~"/"#-" tables stream.
func Open(buf []byte, opts ...OpenOption) (*Reader, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	hdr, warnings, err := parseHeader(buf, cfg.reservedFieldWarnings)
	if err != nil {
		return nil, err
	}

	n := popcount(hdr.valid)
	rowsBytes := 4 * n

	if len(buf) < headerSize+rowsBytes {
		return nil, fmt.Errorf("%w: Rows[] needs %d bytes at offset %d, buffer has %d",
			errs.ErrTruncated, rowsBytes, headerSize, len(buf))
	}

	rawRows := make([]uint32, n)
	for i := 0; i < n; i++ {
		off := headerSize + 4*i
		rawRows[i] = binary.LittleEndian.Uint32(buf[off : off+4])
	}

	rows, err := rowcount.Build(hdr.valid, rawRows)
	if err != nil {
		return nil, err
	}

	sizes := heapsize.Parse(hdr.heapSizes)

	var schemas map[format.TableNumber]schema.Resolved
	if cfg.withoutSchemaCache {
		schemas, err = schema.ResolveAll(sizes, rows)
	} else {
		schemas, err = defaultCache.Get(sizes, hdr.valid, rows)
	}
	if err != nil {
		return nil, err
	}

	cursor := headerSize + rowsBytes

	present := make([]format.TableNumber, 0, n)
	views := make(map[format.TableNumber]TableView, n)

	for t := 0; t < format.MaxTableNumber; t++ {
		tn := format.TableNumber(t)
		if hdr.valid&(uint64(1)<<uint(t)) == 0 {
			continue
		}

		rc := rows.Get(tn)
		layout := schemas[tn]
		length := int(rc) * int(layout.Stride)

		if cursor+length > len(buf) {
			if cfg.lenientBounds {
				break
			}

			return nil, fmt.Errorf("%w: table %s needs %d bytes at offset %d, buffer has %d",
				errs.ErrTruncated, tn, length, cursor, len(buf))
		}

		views[tn] = TableView{
			Number:   tn,
			RowCount: rc,
			bytes:    buf[cursor : cursor+length],
			layout:   layout,
		}
		present = append(present, tn)
		cursor += length
	}

	if !cfg.lenientBounds && cursor != len(buf) {
		return nil, fmt.Errorf("%w: tables consumed %d bytes, buffer has %d", errs.ErrTruncated, cursor, len(buf))
	}

	return &Reader{
		majorVersion: hdr.majorVersion,
		minorVersion: hdr.minorVersion,
		valid:        hdr.valid,
		sorted:       hdr.sorted,
		rows:         rows,
		schemas:      schemas,
		warnings:     warnings,
		present:      present,
		views:        views,
	}, nil
}

// OpenFromStreams looks up the "#~" stream (falling back to "#-") from s
// and opens it exactly like Open.
func OpenFromStreams(s heapreader.Streams, opts ...OpenOption) (*Reader, error) {
	buf, ok := s.Stream("#~")
	if !ok {
		buf, ok = s.Stream("#-")
	}

	if !ok {
		return nil, fmt.Errorf("%w: neither \"#~\" nor \"#-\" stream present", errs.ErrTruncated)
	}

	return Open(buf, opts...)
}

// MajorVersion returns the header's MajorVersion field.
func (r *Reader) MajorVersion() uint8 { return r.majorVersion }

// MinorVersion returns the header's MinorVersion field.
func (r *Reader) MinorVersion() uint8 { return r.minorVersion }

// Valid returns the header's Valid bitmask, as read.
func (r *Reader) Valid() uint64 { return r.valid }

// Sorted returns the header's Sorted bitmask, as read.
func (r *Reader) Sorted() uint64 { return r.sorted }

// Warnings returns non-fatal issues collected while opening, such as a
// reserved-field mismatch downgraded by WithReservedFieldWarnings. It is
// empty unless such an option was used.
func (r *Reader) Warnings() []string { return r.warnings }

// Table returns the view for table t, or false if t has no byte range in
// this reader (either its Valid bit is clear, or it was dropped by
// WithLenientBounds).
func (r *Reader) Table(t format.TableNumber) (TableView, bool) {
	v, ok := r.views[t]
	return v, ok
}

// Iter returns every present table's view, in ascending table-number
// order. The returned slice is a fresh copy each call, safe to mutate.
func (r *Reader) Iter() []TableView {
	out := make([]TableView, 0, len(r.present))
	for _, t := range r.present {
		out = append(out, r.views[t])
	}

	return out
}
