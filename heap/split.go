package heap

import (
	"unsafe"

	"github.com/joshuapare/heapkit/internal/layout"
)

// split carves the tail of b into a new free block when the remainder can
// host a header plus at least one alignment unit of payload. Smaller
// remainders stay inside b as internal fragmentation.
func (h *Heap) split(b *block, size uintptr) {
	if b.size < size+headerSize+layout.Alignment {
		return
	}

	frag := blockAt(unsafe.Add(b.payload(), size))
	frag.size = b.size - size - headerSize
	frag.free = true
	frag.next = b.next
	frag.prev = b
	if b.next != nil {
		b.next.prev = frag
	}
	b.next = frag
	b.size = size

	h.counters.Splits++
	logSplit(b.payload(), b.size, frag.size)
}

// coalesce merges b with list neighbors that are free and physically
// contiguous, backward first, then forward. Returns the surviving block.
// The contiguity check is mandatory: list-adjacent free blocks from
// different mappings must remain separate.
func (h *Heap) coalesce(b *block) *block {
	if p := b.prev; p != nil && p.free && contiguous(p, b) {
		p.size += headerSize + b.size
		p.next = b.next
		if b.next != nil {
			b.next.prev = p
		}
		b = p
		h.counters.Coalesces++
		logCoalesce("prev", b.payload(), b.size)
	}

	if n := b.next; n != nil && n.free && contiguous(b, n) {
		b.size += headerSize + n.size
		b.next = n.next
		if n.next != nil {
			n.next.prev = b
		}
		h.counters.Coalesces++
		logCoalesce("next", b.payload(), b.size)
	}

	return b
}
