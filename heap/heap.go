package heap

import (
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/joshuapare/heapkit/internal/layout"
	"github.com/joshuapare/heapkit/internal/mmap"
)

// pageSize is the mapping granularity for heap extensions.
var pageSize = os.Getpagesize()

// Counters holds cumulative operation counts for instrumentation. They are
// bookkeeping only and take no part in allocation decisions.
type Counters struct {
	MallocCalls    int64
	FreeCalls      int64
	ExtendCalls    int64
	Splits         int64
	Coalesces      int64
	FallbackAllocs int64
}

// Heap is a single-mutator allocator instance. The zero value is not
// usable; call New. The package-level functions operate on a process-wide
// default instance.
type Heap struct {
	base   *block // head of the block list; nil means untouched or reset
	policy Policy

	// Bump state of the most recent mapping. Extensions carve from the
	// mapping's remaining slack while it lasts, so blocks created back to
	// back are physically contiguous and can coalesce later.
	cursor unsafe.Pointer
	slack  uintptr

	// Recursion guard. See guard.go.
	guard    atomic.Bool
	fallback map[uintptr][]byte

	counters Counters
}

// New returns an empty heap using the first-fit policy.
func New() *Heap {
	return &Heap{fallback: make(map[uintptr][]byte)}
}

// extend creates a new in-use block of the given aligned payload size and
// splices it after tail. Memory comes from the active mapping's slack when
// it fits, otherwise from a fresh page-aligned anonymous mapping. Returns
// nil when the kernel refuses memory.
func (h *Heap) extend(tail *block, size uintptr) *block {
	need := headerSize + size
	if h.slack < need {
		mapLen := layout.AlignPage(int(need), pageSize)
		mem, err := mmap.Alloc(mapLen)
		if err != nil {
			logExtendFail()
			return nil
		}
		h.cursor = unsafe.Pointer(&mem[0])
		h.slack = uintptr(mapLen)
	}

	b := blockAt(h.cursor)
	b.size = size
	b.free = false
	b.next = nil
	b.prev = tail
	if tail != nil {
		tail.next = b
	}

	h.cursor = unsafe.Add(h.cursor, need)
	h.slack -= need
	h.counters.ExtendCalls++
	logExtend(need, b.payload())
	return b
}

// ResetForTesting abandons the entire block list and the active mapping.
// The mappings behind them leak; acceptable only to isolate tests, exactly
// like a fresh process.
func (h *Heap) ResetForTesting() {
	h.base = nil
	h.cursor = nil
	h.slack = 0
	logReset()
}

// OpCounters returns a snapshot of the cumulative operation counters.
func (h *Heap) OpCounters() Counters {
	return h.counters
}
