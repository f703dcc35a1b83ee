package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	logPath string
)

var rootCmd = &cobra.Command{
	Use:   "heapctl",
	Short: "Exercise and inspect the heapkit allocator",
	Long: `heapctl drives the heapkit allocator with scripted and random
workloads and reports usage, fragmentation and placement behavior. It is
a workbench for the library, not a production tool.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		if logPath != "" {
			return heap.InitLog(logPath)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		heap.CloseLog()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		StringVar(&logPath, "event-log", "", "Write the allocator event log to this file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	execute()
}

// parsePolicy maps a flag value onto a placement policy.
func parsePolicy(name string) (heap.Policy, error) {
	switch name {
	case "first":
		return heap.FirstFit, nil
	case "best":
		return heap.BestFit, nil
	case "worst":
		return heap.WorstFit, nil
	}
	return heap.FirstFit, fmt.Errorf("unknown policy %q (want first, best or worst)", name)
}
