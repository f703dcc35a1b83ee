package heap

import "unsafe"

// The recursion guard keeps the allocator safe to install in place of a
// host runtime's malloc: any host routine that allocates while servicing
// this allocator (symbol resolution, formatted output) re-enters it, and
// without the guard that recursion never terminates.
//
// The flag is an atomic CAS rather than thread-local state: Go exposes no
// TLS to libraries, and under the single-mutator model the only way the
// flag is already set on entry is re-entry from the same mutator's call
// stack. A second mutator misusing the heap degrades to fallback
// delegation here, never to unbounded recursion; the block list itself
// stays unlocked.

// enter claims the guard. It reports false when the caller is already
// inside the allocator, in which case the caller must take the fallback
// path instead of recursing.
func (h *Heap) enter() bool {
	return h.guard.CompareAndSwap(false, true)
}

// leave releases the guard. It must run on every return path.
func (h *Heap) leave() {
	h.guard.Store(false)
}

// fallbackAlloc services a re-entrant Malloc from the host runtime's own
// allocator. The payload is pinned in the fallback registry so the garbage
// collector keeps it alive until the matching Free drops it.
func (h *Heap) fallbackAlloc(size int) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	buf := make([]byte, size)
	p := unsafe.Pointer(&buf[0])
	h.fallback[uintptr(p)] = buf
	h.counters.FallbackAllocs++
	return p
}

// releaseFallback unpins p if it came from the fallback allocator,
// reporting whether it did. Dropping the pin is the fallback analogue of
// free: the host runtime reclaims the memory on its own schedule.
func (h *Heap) releaseFallback(p unsafe.Pointer) bool {
	if _, ok := h.fallback[uintptr(p)]; ok {
		delete(h.fallback, uintptr(p))
		return true
	}
	return false
}
