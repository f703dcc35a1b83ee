package heap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLogRecordsOperations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	require.NoError(t, InitLog(path))
	defer CloseLog()

	h := New()
	p := h.Malloc(2048)
	require.NotNil(t, p)
	h.Free(p)
	small := h.Malloc(100) // splits the freed block
	require.NotNil(t, small)
	c := h.Calloc(10, 10)
	require.NotNil(t, c)
	r := h.Realloc(small, 40)
	require.NotNil(t, r)
	h.Free(small)
	h.Free(c)

	CloseLog()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	for _, op := range []string{
		"malloc", "free", "calloc", "realloc",
		"extend_heap", "split_block", "coalesce",
	} {
		assert.Containsf(t, out, op, "log must mention %s", op)
	}
}

func TestEventLogLinesStayWithinLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	require.NoError(t, InitLog(path))
	defer CloseLog()

	h := New()
	h.Free(h.Malloc(64))

	CloseLog()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, ln := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		assert.LessOrEqual(t, len(ln), 255)
	}
}

func TestInitLogTruncatesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	require.NoError(t, os.WriteFile(path, []byte("stale contents\n"), 0o644))

	require.NoError(t, InitLog(path))
	CloseLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestInitLogEmptyPathDisables(t *testing.T) {
	require.NoError(t, InitLog(""))
	assert.False(t, logEnabled())

	// Disabled logging must be a silent no-op for every operation.
	h := New()
	p := h.Malloc(64)
	require.NotNil(t, p)
	h.Free(p)
}

func TestInitLogBadPathReturnsError(t *testing.T) {
	err := InitLog(filepath.Join(t.TempDir(), "missing", "dir", "events.log"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogOpen)
	assert.False(t, logEnabled())
}

func TestResetWritesMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	require.NoError(t, InitLog(path))
	defer CloseLog()

	h := New()
	require.NotNil(t, h.Malloc(32))
	h.ResetForTesting()

	CloseLog()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "reset: heap abandoned")
}
