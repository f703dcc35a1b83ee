package heap

import (
	"fmt"
	"os"
	"unsafe"
)

// Stats is a snapshot of live heap usage. Totals count payload bytes only;
// header bytes are excluded.
type Stats struct {
	AllocatedBytes  int64
	FreeBytes       int64
	AllocatedBlocks int
	FreeBlocks      int
}

// UsageStats walks the block list once and classifies every block.
func (h *Heap) UsageStats() Stats {
	var s Stats
	for cur := h.base; cur != nil; cur = cur.next {
		if cur.free {
			s.FreeBytes += int64(cur.size)
			s.FreeBlocks++
		} else {
			s.AllocatedBytes += int64(cur.size)
			s.AllocatedBlocks++
		}
	}
	return s
}

// FragmentationRate reports how scattered the free memory is: 0.0 when all
// free memory sits in a single block (or there is none), approaching 1.0
// as the largest free block shrinks relative to the free total.
func (h *Heap) FragmentationRate() float64 {
	var total, largest uintptr
	for cur := h.base; cur != nil; cur = cur.next {
		if !cur.free {
			continue
		}
		total += cur.size
		if cur.size > largest {
			largest = cur.size
		}
	}
	if total == 0 {
		return 0.0
	}
	return 1.0 - float64(largest)/float64(total)
}

// CheckConsistency walks the block list and writes a diagnostic line to
// stderr for each structural defect found: a back-link that does not point
// at its owner, or two list-adjacent free blocks that are physically
// contiguous and should have been coalesced.
func (h *Heap) CheckConsistency() {
	for cur := h.base; cur != nil; cur = cur.next {
		if cur.next != nil && cur.next.prev != cur {
			fmt.Fprintf(os.Stderr,
				"heap inconsistency: block %p next.prev does not point back\n",
				unsafe.Pointer(cur))
		}
		if cur.free && cur.next != nil && cur.next.free && contiguous(cur, cur.next) {
			fmt.Fprintf(os.Stderr,
				"heap inconsistency: contiguous free blocks %p and %p not coalesced\n",
				unsafe.Pointer(cur), unsafe.Pointer(cur.next))
		}
	}
}
