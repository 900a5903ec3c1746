package dump

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/mdtables/tablestream/format"
	"github.com/mdtables/tablestream/tablestream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildModuleStream(t *testing.T) []byte {
	t.Helper()

	buf := make([]byte, 24)
	buf[4] = 2 // major
	buf[7] = 1 // reserved1
	valid := uint64(1) << uint(format.Module)
	binary.LittleEndian.PutUint64(buf[8:16], valid)
	buf = append(buf, 0x01, 0, 0, 0) // Rows[0] = 1

	row := make([]byte, 10)
	row[0] = 0x02 // Generation
	buf = append(buf, row...)

	return buf
}

func TestTable_RendersOneLinePerRow(t *testing.T) {
	buf := buildModuleStream(t)

	r, err := tablestream.Open(buf)
	require.NoError(t, err)

	view, ok := r.Table(format.Module)
	require.True(t, ok)

	out := Table(view)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "2") // Generation value
}

func TestTable_EmptyTableRendersNothing(t *testing.T) {
	buf := make([]byte, 24)
	buf[4] = 2
	buf[7] = 1
	binary.LittleEndian.PutUint64(buf[8:16], uint64(1)<<uint(format.Module))
	buf = append(buf, 0, 0, 0, 0) // Rows[0] = 0: Module is present with no rows

	r, err := tablestream.Open(buf)
	require.NoError(t, err)

	view, ok := r.Table(format.Module)
	require.True(t, ok)

	// A zero-row table renders to an empty string, without panicking.
	assert.Empty(t, Table(view))
}
