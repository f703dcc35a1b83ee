package main

import (
	"fmt"
	"math/rand"
	"os"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/report"
)

var (
	policiesAllocs int
	policiesMax    int
	policiesSeed   int64
)

func init() {
	cmd := newPoliciesCmd()
	cmd.Flags().IntVar(&policiesAllocs, "allocs", 1000, "Allocations per policy run")
	cmd.Flags().IntVar(&policiesMax, "max-size", 256, "Largest allocation in bytes")
	cmd.Flags().Int64Var(&policiesSeed, "seed", 1, "Workload seed")
	rootCmd.AddCommand(cmd)
}

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "Compare fragmentation across placement policies",
		Long: `The policies command runs the same allocate-then-partially-free
workload under first-fit, best-fit and worst-fit on separate heaps and
reports each one, making the fragmentation behavior of the policies
directly comparable.

Example:
  heapctl policies --allocs 5000 --max-size 512`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPolicies()
		},
	}
}

func runPolicies() error {
	for _, policy := range []heap.Policy{heap.FirstFit, heap.BestFit, heap.WorstFit} {
		h := heap.New()
		h.SetPolicy(policy)
		rng := rand.New(rand.NewSource(policiesSeed))

		ptrs := make([]unsafe.Pointer, policiesAllocs)
		for i := range ptrs {
			ptrs[i] = h.Malloc(1 + rng.Intn(policiesMax))
		}
		// Free every other block to punch holes into the heap.
		for i := 0; i < len(ptrs); i += 2 {
			h.Free(ptrs[i])
		}

		fmt.Printf("=== %s ===\n", policy)
		if err := report.Write(os.Stdout, h); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}
