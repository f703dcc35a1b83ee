package main

import (
	"os"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/report"
)

var statsPolicy string

func init() {
	cmd := newStatsCmd()
	cmd.Flags().StringVar(&statsPolicy, "policy", "first", "Placement policy (first, best, worst)")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for a scripted workload",
		Long: `The stats command runs a fixed, deterministic workload on a private
heap - mixed-size allocations, partial frees, an in-place shrink and a
forced move - and prints the resulting usage, fragmentation and
operation counters. The same script under different policies makes
their placement behavior directly comparable.

Example:
  heapctl stats
  heapctl stats --policy worst
  heapctl stats --event-log events.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatsReport()
		},
	}
}

func runStatsReport() error {
	policy, err := parsePolicy(statsPolicy)
	if err != nil {
		return err
	}

	h := heap.New()
	h.SetPolicy(policy)

	// A small fixed script that exercises every allocator path: extension,
	// split, coalesce, in-place realloc and a forced move.
	sizes := []int{64, 128, 256, 512, 1024, 2048, 96, 48, 300, 24}
	ptrs := make([]unsafe.Pointer, len(sizes))
	for i, size := range sizes {
		ptrs[i] = h.Malloc(size)
	}
	for i := 0; i < len(ptrs); i += 2 {
		h.Free(ptrs[i])
		ptrs[i] = nil
	}
	ptrs[1] = h.Realloc(ptrs[1], 32)   // in-place shrink
	ptrs[3] = h.Realloc(ptrs[3], 4096) // forced move
	h.Free(h.Calloc(16, 8))

	h.CheckConsistency()
	return report.Write(os.Stdout, h)
}
