package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"intentbench/internal/benchmark"
	"intentbench/internal/classifier"
	"intentbench/internal/config"
	"intentbench/internal/corpus"
	"intentbench/internal/evaluation"
	"intentbench/internal/report"
	"intentbench/internal/store"
)

// ErrThresholdNotMet is the one condition that surfaces as a fatal,
// process-ending failure: the CI gate.
var ErrThresholdNotMet = errors.New("accuracy threshold not met")

var (
	runCategory  string
	runOutput    string
	runBaseline  string
	runSuite     string
	runThreshold float64
	runWorkers   int
	runNoHistory bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the accuracy test suite",
	Long: `Runs the test corpus (or one category of it) through the
configured classifier and prints an accuracy report.

Exit code is 0 unless --threshold is set and the achieved accuracy is
strictly below it.

Examples:
  intentbench run
  intentbench run --category typos --verbose
  intentbench run --output results.json --threshold 0.9
  intentbench run --baseline results.json`,
	RunE: runSuiteCmd,
}

func init() {
	runCmd.Flags().StringVar(&runCategory, "category", "", "restrict the run to one category")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "write raw results to this JSON file")
	runCmd.Flags().StringVar(&runBaseline, "baseline", "", "compare against a previously saved results file")
	runCmd.Flags().StringVar(&runSuite, "suite", "", "merge an external YAML test suite into the corpus")
	runCmd.Flags().Float64VarP(&runThreshold, "threshold", "t", -1, "minimum acceptable accuracy in [0,1]; exit non-zero below it")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "evaluate cases on a bounded worker pool (0 = config/sequential)")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "skip recording this run in the history db")
}

func runSuiteCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(workspace)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("threshold") && (runThreshold < 0 || runThreshold > 1) {
		return fmt.Errorf("threshold %.3f outside [0,1]", runThreshold)
	}

	// Corpus setup: built-in cases plus any external suite. Validation
	// failures here are fatal before any evaluation begins.
	corp := corpus.Builtin()
	if runSuite != "" {
		suite, err := corpus.LoadSuite(runSuite)
		if err != nil {
			return fmt.Errorf("failed to load suite: %w", err)
		}
		corp.Merge(suite.Corpus())
	}

	cls, err := classifier.New(ctx, cfg.Classifier)
	if err != nil {
		return err
	}

	workers := runWorkers
	if workers <= 0 {
		workers = cfg.Evaluation.Workers
	}
	engine := evaluation.New(cls, corp, evaluation.Options{
		CaseTimeout: cfg.CaseTimeout(),
		Workers:     workers,
	})

	var rep *evaluation.Report
	var results []evaluation.Result
	if runCategory != "" {
		cat, err := corpus.ParseCategory(runCategory)
		if err != nil {
			return err
		}
		rep, results, err = engine.RunCategory(ctx, cat)
		if err != nil {
			return err
		}
	} else {
		rep, results, err = engine.RunFull(ctx)
		if err != nil {
			return err
		}
	}

	artifact := store.NewArtifact(cls.Name(), runCategory, results)

	if runOutput != "" {
		if err := artifact.Save(runOutput); err != nil {
			return err
		}
		logger.Info("results written", zap.String("path", runOutput), zap.String("run_id", artifact.RunID))
	}

	fmt.Println(report.Render(rep, results, verbose))

	// Baseline comparison is best-effort: a missing or unreadable
	// baseline skips the comparison with a warning, never fails the run.
	if runBaseline != "" {
		baseline, err := store.LoadArtifact(runBaseline)
		if err != nil {
			logger.Warn("skipping baseline comparison", zap.String("baseline", runBaseline), zap.Error(err))
		} else {
			cmp := benchmark.Compare(baseline.Results, results, 0)
			fmt.Println(report.RenderComparison(cmp))
		}
	}

	if !runNoHistory && !cfg.History.Disabled {
		if err := recordHistory(cfg.History.Path, artifact, rep); err != nil {
			logger.Warn("failed to record run history", zap.Error(err))
		}
	}

	if runThreshold >= 0 && rep.Accuracy < runThreshold {
		return fmt.Errorf("%w: accuracy %.3f below threshold %.3f", ErrThresholdNotMet, rep.Accuracy, runThreshold)
	}
	return nil
}

func recordHistory(path string, artifact *store.Artifact, rep *evaluation.Report) error {
	history, err := store.OpenHistory(path)
	if err != nil {
		return err
	}
	defer history.Close()
	return history.Append(artifact, rep)
}
