// Package evaluation runs a test case corpus through a classifier and
// folds the per-case outcomes into aggregate accuracy statistics.
package evaluation

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"intentbench/internal/classifier"
	"intentbench/internal/corpus"
	"intentbench/internal/logging"
)

// Result captures one test case run. Created once, never mutated.
type Result struct {
	TestCase         corpus.TestCase `json:"test_case"`
	ActualIntent     corpus.Intent   `json:"actual_intent"`
	ActualConfidence float64         `json:"actual_confidence"`
	ExecutionTimeMs  int64           `json:"execution_time_ms"`
	Passed           bool            `json:"passed"`
	Error            string          `json:"error,omitempty"`
}

// Options tunes a run.
type Options struct {
	// CaseTimeout bounds each classifier invocation. A case that does
	// not respond within the bound is recorded as failed; the suite
	// continues.
	CaseTimeout time.Duration

	// Workers > 1 evaluates cases on a bounded pool. Aggregate output
	// is identical to sequential execution since aggregation is a
	// commutative fold over independent results.
	Workers int
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{CaseTimeout: 10 * time.Second, Workers: 1}
}

// Engine evaluates a corpus against a classifier. Stateless across
// runs; each Run* call is an independent pipeline.
type Engine struct {
	classifier classifier.Classifier
	corpus     *corpus.Corpus
	opts       Options
}

// New creates an engine. A zero CaseTimeout falls back to the default.
func New(c classifier.Classifier, corp *corpus.Corpus, opts Options) *Engine {
	if opts.CaseTimeout <= 0 {
		opts.CaseTimeout = DefaultOptions().CaseTimeout
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Engine{classifier: c, corpus: corp, opts: opts}
}

// RunFull evaluates the whole corpus.
func (e *Engine) RunFull(ctx context.Context) (*Report, []Result, error) {
	if err := e.corpus.Validate(); err != nil {
		return nil, nil, err
	}
	return e.run(ctx, e.corpus.All())
}

// RunCategory evaluates the corpus slice for one category. A category
// with no members yields an empty result set and a zeroed report.
func (e *Engine) RunCategory(ctx context.Context, cat corpus.Category) (*Report, []Result, error) {
	if err := e.corpus.Validate(); err != nil {
		return nil, nil, err
	}
	return e.run(ctx, e.corpus.ByCategory(cat))
}

func (e *Engine) run(ctx context.Context, cases []corpus.TestCase) (*Report, []Result, error) {
	timer := logging.StartTimer(logging.CategoryEvaluation, fmt.Sprintf("run %d cases", len(cases)))
	defer timer.Stop()

	logging.Evaluation("Evaluating %d cases with %s (workers=%d)", len(cases), e.classifier.Name(), e.opts.Workers)

	results := make([]Result, len(cases))

	if e.opts.Workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.opts.Workers)
		for i, tc := range cases {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = e.evaluateCase(gctx, tc)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for i, tc := range cases {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			results[i] = e.evaluateCase(ctx, tc)
		}
	}

	rep := Aggregate(results)
	logging.Evaluation("Run complete: %d/%d passed (accuracy %.3f)", rep.Passed, rep.TotalTests, rep.Accuracy)
	return rep, results, nil
}

// evaluateCase invokes the classifier with a per-case deadline. Any
// classifier error or timeout marks the case failed with the sentinel
// intent; it never aborts the suite.
func (e *Engine) evaluateCase(ctx context.Context, tc corpus.TestCase) Result {
	cctx, cancel := context.WithTimeout(ctx, e.opts.CaseTimeout)
	defer cancel()

	type outcome struct {
		pred classifier.Prediction
		err  error
	}
	done := make(chan outcome, 1)

	start := time.Now()
	go func() {
		pred, err := e.classifier.Classify(cctx, tc.Input)
		done <- outcome{pred, err}
	}()

	var pred classifier.Prediction
	var err error
	select {
	case o := <-done:
		pred, err = o.pred, o.err
	case <-cctx.Done():
		// Abandon the case; the classifier goroutine is left to drain
		// into the buffered channel.
		err = cctx.Err()
	}
	elapsed := time.Since(start).Milliseconds()

	res := Result{TestCase: tc, ExecutionTimeMs: elapsed}
	if err != nil {
		res.ActualIntent = corpus.IntentError
		res.ActualConfidence = 0
		res.Passed = false
		res.Error = err.Error()
		logging.Get(logging.CategoryEvaluation).Warn("case %q: classifier error: %v", tc.Input, err)
		return res
	}

	res.ActualIntent = pred.Intent
	res.ActualConfidence = pred.Confidence
	res.Passed = pred.Intent == tc.ExpectedIntent &&
		(tc.MinConfidence == nil || pred.Confidence >= *tc.MinConfidence)
	return res
}
