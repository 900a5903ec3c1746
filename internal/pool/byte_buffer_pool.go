// Package pool provides a reusable byte buffer used by the row-dumping
// helper in internal/dump, so repeatedly rendering table rows for tests,
// benchmarks, and diagnostics does not allocate a fresh buffer per call.
package pool

import "sync"

const (
	// DumpBufferDefaultSize is the initial capacity handed out by the
	// default dump pool; large enough to hold a few dozen decoded rows
	// of a typical metadata table without growing.
	DumpBufferDefaultSize = 4 * 1024

	// DumpBufferMaxThreshold is the largest buffer the pool will retain;
	// buffers grown past this (e.g. dumping a huge TypeDef table) are
	// discarded instead of pooled, to avoid pinning that memory forever.
	DumpBufferMaxThreshold = 256 * 1024
)

// ByteBuffer is a growable byte slice wrapper, used instead of
// bytes.Buffer so callers can reset and reuse the backing array without
// going through an io.Writer interface.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes currently written to the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// Grow ensures the buffer can hold requiredBytes more bytes without a
// further reallocation.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DumpBufferDefaultSize
	if cap(bb.B) > 4*DumpBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers to reduce allocations across repeated
// dump calls.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and
// are discarded (rather than retained) once grown past maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var defaultDumpPool = NewByteBufferPool(DumpBufferDefaultSize, DumpBufferMaxThreshold)

// GetDumpBuffer retrieves a ByteBuffer from the default dump pool.
func GetDumpBuffer() *ByteBuffer {
	return defaultDumpPool.Get()
}

// PutDumpBuffer returns a ByteBuffer to the default dump pool.
func PutDumpBuffer(bb *ByteBuffer) {
	defaultDumpPool.Put(bb)
}
