package schemacache

import (
	"testing"

	"github.com/mdtables/tablestream/format"
	"github.com/mdtables/tablestream/heapsize"
	"github.com/mdtables/tablestream/rowcount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetCachesByShape(t *testing.T) {
	c := New()
	sizes := heapsize.Parse(0)

	valid := uint64(1) << uint(format.Module)
	rows, err := rowcount.Build(valid, []uint32{1})
	require.NoError(t, err)

	first, err := c.Get(sizes, valid, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	second, err := c.Get(sizes, valid, rows)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len(), "same shape must not add a second entry")
}

func TestCache_DistinctShapesGetDistinctEntries(t *testing.T) {
	c := New()
	sizes := heapsize.Parse(0)

	validA := uint64(1) << uint(format.Module)
	rowsA, err := rowcount.Build(validA, []uint32{1})
	require.NoError(t, err)

	validB := uint64(1) << uint(format.TypeRef)
	rowsB, err := rowcount.Build(validB, []uint32{2})
	require.NoError(t, err)

	_, err = c.Get(sizes, validA, rowsA)
	require.NoError(t, err)
	_, err = c.Get(sizes, validB, rowsB)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New()
	sizes := heapsize.Parse(0b101)
	valid := uint64(1) << uint(format.TypeDef)
	rows, err := rowcount.Build(valid, []uint32{5})
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = c.Get(sizes, valid, rows)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	assert.Equal(t, 1, c.Len())
}
