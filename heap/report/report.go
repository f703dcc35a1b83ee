// Package report renders human-readable snapshots of a heap for CLI and
// diagnostic output. It is presentation only: everything it prints comes
// from the heap's introspection surface.
package report

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/heapkit/heap"
)

// Write renders usage, fragmentation and operation counters for h to w
// with locale-aware number formatting.
func Write(w io.Writer, h *heap.Heap) error {
	p := message.NewPrinter(language.English)
	s := h.UsageStats()
	c := h.OpCounters()

	if _, err := p.Fprintf(w, "Policy:         %s\n", h.CurrentPolicy()); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Allocated:      %d bytes in %d blocks\n",
		s.AllocatedBytes, s.AllocatedBlocks); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Free:           %d bytes in %d blocks\n",
		s.FreeBytes, s.FreeBlocks); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Fragmentation:  %.2f%%\n", h.FragmentationRate()*100); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Operations:     %d malloc, %d free, %d extend\n",
		c.MallocCalls, c.FreeCalls, c.ExtendCalls); err != nil {
		return err
	}
	_, err := p.Fprintf(w, "Restructuring:  %d splits, %d coalesces, %d fallback allocs\n",
		c.Splits, c.Coalesces, c.FallbackAllocs)
	return err
}
