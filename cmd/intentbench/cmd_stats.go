package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"intentbench/internal/config"
	"intentbench/internal/corpus"
	"intentbench/internal/report"
	"intentbench/internal/store"
)

var statsHistoryLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset statistics and recent run history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(workspace)
		if err != nil {
			return err
		}

		corp := corpus.Builtin()
		fmt.Println(report.RenderStats(corp.DatasetStats()))

		// History is optional output; a missing db just means no runs yet.
		if _, err := os.Stat(cfg.History.Path); err != nil {
			return nil
		}
		history, err := store.OpenHistory(cfg.History.Path)
		if err != nil {
			logger.Warn("failed to open run history", zap.Error(err))
			return nil
		}
		defer history.Close()

		records, err := history.Recent(statsHistoryLimit)
		if err != nil {
			logger.Warn("failed to read run history", zap.Error(err))
			return nil
		}
		if len(records) == 0 {
			return nil
		}

		fmt.Println("Recent runs:")
		for _, r := range records {
			fmt.Printf("  %s  %-22s %3d/%3d  %.1f%%  %s\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Classifier,
				r.Passed, r.TotalTests, r.Accuracy*100, r.RunID[:8])
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsHistoryLimit, "limit", 10, "number of history rows to show")
}
