package heap

import (
	"unsafe"

	"github.com/joshuapare/heapkit/internal/layout"
)

// block is the in-band header preceding every payload. The allocator owns
// every header byte; the client owns the payload of an in-use block. Links
// are non-owning navigation handles: the list never frees what they point
// at.
//
// Blocks appear in the list in creation order. List adjacency does not
// imply address adjacency; see contiguous.
type block struct {
	size uintptr // payload bytes, always a multiple of layout.Alignment
	next *block
	prev *block
	free bool
}

// headerSize is the header footprint rounded up to the alignment unit so
// payloads start on aligned addresses.
const headerSize = (unsafe.Sizeof(block{}) + layout.Alignment - 1) &^ (layout.Alignment - 1)

// blockAt interprets the memory at p as a block header.
func blockAt(p unsafe.Pointer) *block {
	return (*block)(p)
}

// payload returns the user pointer for b.
func (b *block) payload() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(b), headerSize)
}

// contiguous reports whether a's payload ends exactly where b's header
// begins. Blocks from different mappings never satisfy this, so merge
// decisions gated on it can never reach across unrelated memory.
func contiguous(a, b *block) bool {
	return uintptr(unsafe.Pointer(a))+headerSize+a.size == uintptr(unsafe.Pointer(b))
}
