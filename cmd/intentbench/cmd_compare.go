package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"intentbench/internal/benchmark"
	"intentbench/internal/report"
	"intentbench/internal/store"
)

var compareEpsilon float64

var compareCmd = &cobra.Command{
	Use:   "compare [baseline-file] [current-file]",
	Short: "Compare two saved result files",
	Long: `Recomputes aggregate statistics from two saved result files and
prints the deltas (current - baseline) plus the intents whose accuracy
improved or degraded.

Example:
  intentbench compare baseline.json current.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseline, err := store.LoadArtifact(args[0])
		if err != nil {
			return fmt.Errorf("failed to load baseline: %w", err)
		}
		current, err := store.LoadArtifact(args[1])
		if err != nil {
			return fmt.Errorf("failed to load current results: %w", err)
		}

		cmp := benchmark.Compare(baseline.Results, current.Results, compareEpsilon)
		fmt.Println(report.RenderComparison(cmp))
		return nil
	},
}

func init() {
	compareCmd.Flags().Float64Var(&compareEpsilon, "epsilon", 0, "per-intent accuracy noise threshold")
}
