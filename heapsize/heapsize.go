// Package heapsize decodes the tables-stream header's HeapSizes byte into
// the index width the Schema Resolver uses for each of the three heaps.
package heapsize

import "github.com/mdtables/tablestream/format"

const (
	stringWideBit = 1 << 0
	guidWideBit   = 1 << 1
	blobWideBit   = 1 << 2
)

const (
	narrowWidth uint8 = 2
	wideWidth   uint8 = 4
)

// Sizes holds the resolved index width, in bytes, for each heap.
type Sizes struct {
	String uint8
	GUID   uint8
	Blob   uint8
}

// Parse derives Sizes from the stream header's HeapSizes byte: bit 0
// selects the string heap width, bit 1 the GUID heap width, bit 2 the
// blob heap width. A set bit means 4 bytes, clear means 2.
func Parse(heapSizes byte) Sizes {
	return Sizes{
		String: widthOf(heapSizes, stringWideBit),
		GUID:   widthOf(heapSizes, guidWideBit),
		Blob:   widthOf(heapSizes, blobWideBit),
	}
}

func widthOf(heapSizes byte, bit byte) uint8 {
	if heapSizes&bit != 0 {
		return wideWidth
	}

	return narrowWidth
}

// Width returns the index width for the given heap kind.
func (s Sizes) Width(h format.HeapKind) uint8 {
	switch h {
	case format.HeapString:
		return s.String
	case format.HeapGUID:
		return s.GUID
	case format.HeapBlob:
		return s.Blob
	default:
		return narrowWidth
	}
}
