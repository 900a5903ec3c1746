package heapsize

import (
	"testing"

	"github.com/mdtables/tablestream/format"
	"github.com/stretchr/testify/assert"
)

func TestParse_AllNarrow(t *testing.T) {
	s := Parse(0x00)
	assert.Equal(t, uint8(2), s.String)
	assert.Equal(t, uint8(2), s.GUID)
	assert.Equal(t, uint8(2), s.Blob)
}

func TestParse_AllWide(t *testing.T) {
	s := Parse(0x07)
	assert.Equal(t, uint8(4), s.String)
	assert.Equal(t, uint8(4), s.GUID)
	assert.Equal(t, uint8(4), s.Blob)
}

func TestParse_MixedHeapSizes(t *testing.T) {
	// 0b101: string wide, GUID narrow, blob wide.
	s := Parse(0b101)
	assert.Equal(t, uint8(4), s.String)
	assert.Equal(t, uint8(2), s.GUID)
	assert.Equal(t, uint8(4), s.Blob)
}

func TestParse_IgnoresUnrelatedBits(t *testing.T) {
	// Bits above bit 2 are reserved and must not affect the result.
	s := Parse(0xF8)
	assert.Equal(t, uint8(2), s.String)
	assert.Equal(t, uint8(2), s.GUID)
	assert.Equal(t, uint8(2), s.Blob)
}

func TestSizes_Width(t *testing.T) {
	s := Parse(0b101)
	assert.Equal(t, uint8(4), s.Width(format.HeapString))
	assert.Equal(t, uint8(2), s.Width(format.HeapGUID))
	assert.Equal(t, uint8(4), s.Width(format.HeapBlob))
}
