// Package heap implements a general-purpose dynamic memory allocator over
// anonymous virtual-memory mappings.
//
// # Overview
//
// The allocator manages a single ordered, doubly-linked list of blocks,
// each laid out in-band as [header | payload]. Blocks are carved out of
// page-aligned anonymous mappings obtained directly from the kernel and
// are never returned to the operating system. Oversized free blocks are
// split on allocation; freed blocks are eagerly merged with neighbors that
// are free and physically contiguous.
//
// # Placement policies
//
// Three placement policies select among candidate free blocks:
//
//   - FirstFit: first free block large enough, in list order
//   - BestFit: smallest free block large enough (exact fit short-circuits)
//   - WorstFit: largest free block large enough
//
// Ties break toward the earliest block in list order.
//
// # Public surface
//
// The package-level Malloc, Free, Calloc and Realloc functions operate on
// a process-wide default heap and have the semantics of their C standard
// library namesakes. A Heap value exposes the same operations as methods
// for callers that want a private, hermetic instance:
//
//	h := heap.New()
//	p := h.Malloc(128)
//	defer h.Free(p)
//
// # Introspection
//
// UsageStats walks the block list and reports payload bytes and block
// counts by state. FragmentationRate reports 1 - largest_free/total_free,
// the share of free memory unusable for a maximal single allocation.
// CheckConsistency writes structural diagnostics to stderr.
//
// # Physical vs. logical adjacency
//
// List adjacency never implies address adjacency: separate mappings land
// wherever the kernel places them. Every merge decision therefore checks
// the physical-contiguity predicate before touching a neighbor. Merging
// across unrelated mappings would corrupt memory; this check is the load-
// bearing invariant of the whole design.
//
// # Recursion guard
//
// When the allocator interposes on a host runtime's malloc, any host
// routine that itself allocates re-enters the allocator. A per-heap guard
// flag redirects re-entrant Malloc calls to a fallback allocator and turns
// re-entrant Free calls into no-ops. The event log (InitLog) writes
// through a raw file descriptor from a fixed buffer for the same reason:
// buffered or formatted I/O on the hot path would recurse.
//
// # Thread safety
//
// The allocator assumes a single mutator. Calls are not internally locked;
// concurrent mutation is undefined behavior. Only the recursion guard is
// multi-mutator-aware.
package heap
