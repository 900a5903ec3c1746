// Package endian provides the byte order utility used by the coded-index
// codec's AppendEncoded path.
//
// The CLI/ECMA-335 tables stream is little-endian throughout: there is no
// big-endian variant to interoperate with. The package still exposes an
// EndianEngine interface so the Coded Index Codec can use the
// AppendByteOrder half of the interface for zero-allocation writes during
// round-trip tests (see codedindex.AppendEncoded). The tables-stream
// reader and record accessor do not use this package; they decode with
// encoding/binary.LittleEndian directly.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian satisfies it directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian is the only engine ECMA-335 tables streams use.
var LittleEndian EndianEngine = binary.LittleEndian

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return LittleEndian
}
