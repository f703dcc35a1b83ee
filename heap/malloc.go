package heap

import (
	"unsafe"

	"github.com/joshuapare/heapkit/internal/layout"
)

// Malloc allocates size bytes and returns an 8-byte-aligned pointer to the
// payload, or nil when size is not positive or memory is exhausted. A
// re-entrant call is serviced by the fallback allocator.
func (h *Heap) Malloc(size int) unsafe.Pointer {
	if !h.enter() {
		return h.fallbackAlloc(size)
	}
	defer h.leave()
	return h.malloc(size)
}

// malloc is the guarded body of Malloc.
func (h *Heap) malloc(size int) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	h.counters.MallocCalls++
	aligned := layout.Align8Uintptr(uintptr(size))

	var b *block
	if h.base == nil {
		b = h.extend(nil, aligned)
		if b == nil {
			return nil
		}
		h.base = b
	} else {
		found, last := h.findFreeBlock(aligned)
		if found != nil {
			h.split(found, aligned)
			found.free = false
			b = found
		} else {
			b = h.extend(last, aligned)
			if b == nil {
				return nil
			}
		}
	}

	p := b.payload()
	logMalloc(size, aligned, p)
	return p
}

// Free returns the block behind p to the heap and merges it with free,
// physically contiguous neighbors. A nil pointer is a no-op; a pointer the
// heap does not recognize is logged and otherwise ignored. A re-entrant
// call is dropped outright: the pointer either came from the fallback
// allocator or will be collected with the process, and either outcome
// beats unbounded recursion.
func (h *Heap) Free(p unsafe.Pointer) {
	if !h.enter() {
		return
	}
	defer h.leave()
	h.free(p)
}

// free is the guarded body of Free.
func (h *Heap) free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	h.counters.FreeCalls++
	if h.releaseFallback(p) {
		return
	}
	b := h.lookup(p)
	if b == nil {
		logInvalid("free", p)
		return
	}
	b.free = true
	logFree(p, b.size)
	h.coalesce(b)
}

// Calloc allocates a zeroed array of n elements of elemSize bytes each.
// Returns nil on a zero or negative product, or when the multiplication
// overflows.
func (h *Heap) Calloc(n, elemSize int) unsafe.Pointer {
	if n < 0 || elemSize < 0 {
		return nil
	}
	total := n * elemSize
	if n != 0 && total/n != elemSize {
		return nil
	}
	p := h.Malloc(total)
	if p == nil {
		return nil
	}
	clear(unsafe.Slice((*byte)(p), total))
	logCalloc(total, p)
	return p
}

// Realloc resizes the allocation behind p to size bytes. The first
// min(old, new) payload bytes are preserved. Shrinks and expansions into a
// free, physically contiguous successor happen in place and return p
// unchanged; otherwise the payload moves to a fresh allocation and the old
// block is freed. On allocation failure Realloc returns nil and leaves the
// original block valid.
func (h *Heap) Realloc(p unsafe.Pointer, size int) unsafe.Pointer {
	if p == nil {
		return h.Malloc(size)
	}
	if size <= 0 {
		h.Free(p)
		return nil
	}

	b := h.lookup(p)
	if b == nil {
		logInvalid("realloc", p)
		return nil
	}
	aligned := layout.Align8Uintptr(uintptr(size))

	// In-place shrink: trim the surplus back onto the free list. A split
	// fragment may land right before an already-free contiguous neighbor,
	// so give it a coalesce pass.
	if b.size >= aligned {
		h.split(b, aligned)
		if n := b.next; n != nil && n.free {
			h.coalesce(n)
		}
		logRealloc("shrunk", p, aligned)
		return p
	}

	// In-place expansion: absorb a free, physically contiguous successor
	// when the combined payload covers the request, then trim to size.
	// Only the forward neighbor is considered; the payload must not move.
	if n := b.next; n != nil && n.free && contiguous(b, n) &&
		b.size+headerSize+n.size >= aligned {
		b.size += headerSize + n.size
		b.next = n.next
		if n.next != nil {
			n.next.prev = b
		}
		h.counters.Coalesces++
		logCoalesce("next", p, b.size)
		h.split(b, aligned)
		logRealloc("expanded", p, aligned)
		return p
	}

	// Move: allocate, copy the old payload, release the old block. The
	// original stays valid when the new allocation fails.
	np := h.Malloc(size)
	if np == nil {
		return nil
	}
	copy(unsafe.Slice((*byte)(np), b.size), unsafe.Slice((*byte)(p), b.size))
	h.Free(p)
	logMoved(p, np, aligned)
	return np
}

// lookup returns the in-use block whose payload address equals p, or nil.
// Full-list scan; the heap keeps no index of live pointers.
func (h *Heap) lookup(p unsafe.Pointer) *block {
	for cur := h.base; cur != nil; cur = cur.next {
		if !cur.free && cur.payload() == p {
			return cur
		}
	}
	return nil
}

// IsValidAddress reports whether p is the payload address of an in-use
// block reachable from the heap base. False on a nil pointer or an empty
// heap.
func (h *Heap) IsValidAddress(p unsafe.Pointer) bool {
	if p == nil || h.base == nil {
		return false
	}
	return h.lookup(p) != nil
}
