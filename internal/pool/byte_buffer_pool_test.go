package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(DumpBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	assert.Equal(t, 0, bb.Len())
}

func TestByteBuffer_GrowPreservesData(t *testing.T) {
	bb := NewByteBuffer(16)
	data := []byte("important data that must be preserved")
	_, _ = bb.Write(data)

	bb.Grow(1024)

	assert.Equal(t, data, bb.Bytes())
}

func TestByteBufferPool_ReuseAndReset(t *testing.T) {
	pool := NewByteBufferPool(64, 4096)

	bb := pool.Get()
	_, _ = bb.Write([]byte("data"))
	pool.Put(bb)

	bb2 := pool.Get()
	assert.Equal(t, 0, bb2.Len(), "pooled buffer should come back reset")
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	pool := NewByteBufferPool(64, 128)

	bb := pool.Get()
	bb.Grow(10_000)
	pool.Put(bb)

	bb2 := pool.Get()
	assert.LessOrEqual(t, cap(bb2.B), 128*2, "oversized buffer should not be retained")
}

func TestPutDumpBuffer_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		PutDumpBuffer(nil)
	})
}

func TestDumpBufferPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				bb := GetDumpBuffer()
				_, _ = bb.Write([]byte("row"))
				PutDumpBuffer(bb)
			}
		}()
	}
	wg.Wait()
}
