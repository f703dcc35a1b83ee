package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/layout"
)

// assertHeapInvariants validates the structural invariants that must hold
// outside split/coalesce critical sections: symmetric links, a rootless
// head, aligned sizes and payloads, and no contiguous free neighbors.
func assertHeapInvariants(t *testing.T, h *Heap) {
	t.Helper()
	if h.base == nil {
		return
	}
	require.Nil(t, h.base.prev, "heap base must have no predecessor")

	for cur := h.base; cur != nil; cur = cur.next {
		if cur.next != nil {
			require.True(t, cur.next.prev == cur, "next.prev must point back")
		}
		require.Zero(t, cur.size%layout.Alignment, "block size must be aligned")
		require.Zero(t, uintptr(cur.payload())%layout.Alignment,
			"payload must start aligned")
		if cur.free && cur.next != nil && cur.next.free {
			require.False(t, contiguous(cur, cur.next),
				"contiguous free neighbors survived coalescing")
		}
	}
}

// blockCount walks the list and returns the number of blocks.
func blockCount(h *Heap) int {
	n := 0
	for cur := h.base; cur != nil; cur = cur.next {
		n++
	}
	return n
}
