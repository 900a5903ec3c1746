// Package heapreader names the seam between the tables-stream core and
// the outer metadata-stream loader. Only the interface lives here: heap
// content decoding and the PE/COFF walk that locates these streams are
// out of scope for this module.
package heapreader

// Streams looks up a named metadata stream ("#~", "#-", "#Strings", "#US",
// "#Blob", "#GUID") by name, returning the raw bytes and whether the
// stream is present.
type Streams interface {
	Stream(name string) ([]byte, bool)
}
