package main

import (
	"log/slog"
	"math/rand"
	"os"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/report"
)

var (
	stressOps    int
	stressMax    int
	stressSeed   int64
	stressPolicy string
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressOps, "ops", 10000, "Number of operations to run")
	cmd.Flags().IntVar(&stressMax, "max-size", 512, "Largest allocation in bytes")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "Workload seed")
	cmd.Flags().StringVar(&stressPolicy, "policy", "first", "Placement policy (first, best, worst)")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Run a random alloc/free/realloc workload and report the heap",
		Long: `The stress command drives a private heap with a reproducible random
mix of malloc, free and realloc calls, then prints usage, fragmentation
and operation counters.

Example:
  heapctl stress --ops 50000 --max-size 1024 --policy best
  heapctl stress --event-log events.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

func runStress() error {
	policy, err := parsePolicy(stressPolicy)
	if err != nil {
		return err
	}

	h := heap.New()
	h.SetPolicy(policy)
	rng := rand.New(rand.NewSource(stressSeed))

	var live []unsafe.Pointer
	for i := 0; i < stressOps; i++ {
		switch rng.Intn(4) {
		case 0, 1: // allocate twice as often as the mutations below
			if p := h.Malloc(1 + rng.Intn(stressMax)); p != nil {
				live = append(live, p)
			}
		case 2:
			if len(live) > 0 {
				j := rng.Intn(len(live))
				h.Free(live[j])
				live[j] = live[len(live)-1]
				live = live[:len(live)-1]
			}
		case 3:
			if len(live) > 0 {
				j := rng.Intn(len(live))
				if p := h.Realloc(live[j], 1+rng.Intn(stressMax)); p != nil {
					live[j] = p
				}
			}
		}
		if verbose && i%10000 == 0 {
			slog.Debug("stress progress", "ops", i, "live", len(live))
		}
	}

	h.CheckConsistency()
	return report.Write(os.Stdout, h)
}
