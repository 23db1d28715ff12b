package evaluation

import (
	"testing"

	"intentbench/internal/corpus"
)

func mkResult(expected, actual corpus.Intent, cat corpus.Category, passed bool) Result {
	return Result{
		TestCase:     corpus.TestCase{Input: "x", ExpectedIntent: expected, Category: cat},
		ActualIntent: actual,
		Passed:       passed,
	}
}

func TestAggregateEmpty(t *testing.T) {
	rep := Aggregate(nil)
	if rep.TotalTests != 0 || rep.Passed != 0 || rep.Failed != 0 {
		t.Errorf("empty aggregate has nonzero counts: %+v", rep)
	}
	if rep.Accuracy != 0 || rep.AvgConfidence != 0 || rep.AvgExecutionTimeMs != 0 {
		t.Errorf("empty aggregate has nonzero averages: %+v", rep)
	}
	if len(rep.MisclassificationPatterns) != 0 {
		t.Errorf("empty aggregate has patterns: %+v", rep.MisclassificationPatterns)
	}
}

func TestAggregateCounts(t *testing.T) {
	results := []Result{
		mkResult(corpus.IntentTaskCreation, corpus.IntentTaskCreation, corpus.CategoryBasic, true),
		mkResult(corpus.IntentTaskCreation, corpus.IntentTaskQuery, corpus.CategoryBasic, false),
		mkResult(corpus.IntentTaskQuery, corpus.IntentTaskQuery, corpus.CategoryTypos, true),
	}
	rep := Aggregate(results)

	if rep.Passed+rep.Failed != rep.TotalTests {
		t.Errorf("passed %d + failed %d != total %d", rep.Passed, rep.Failed, rep.TotalTests)
	}

	catTotal := 0
	for _, stat := range rep.CategoryBreakdown {
		catTotal += stat.Total
	}
	if catTotal != rep.TotalTests {
		t.Errorf("category totals sum to %d, want %d", catTotal, rep.TotalTests)
	}

	intentTotal := 0
	for _, stat := range rep.IntentBreakdown {
		intentTotal += stat.Total
	}
	if intentTotal != rep.TotalTests {
		t.Errorf("intent totals sum to %d, want %d", intentTotal, rep.TotalTests)
	}

	basic := rep.CategoryBreakdown[corpus.CategoryBasic]
	if basic.Total != 2 || basic.Passed != 1 || basic.Accuracy != 0.5 {
		t.Errorf("basic bucket = %+v, want total 2 passed 1 accuracy 0.5", basic)
	}
}

func TestAggregatePatternOrdering(t *testing.T) {
	// c->d is encountered before e->f; both count 1. a->b counts 2 and
	// must sort first.
	results := []Result{
		mkResult(corpus.IntentTaskQuery, corpus.IntentNoteTaking, corpus.CategoryBasic, false),
		mkResult(corpus.IntentGoalSetting, corpus.IntentTaskCreation, corpus.CategoryBasic, false),
		mkResult(corpus.IntentTaskQuery, corpus.IntentNoteTaking, corpus.CategoryBasic, false),
		mkResult(corpus.IntentHabitTracking, corpus.IntentScheduleManagement, corpus.CategoryBasic, false),
	}
	rep := Aggregate(results)

	if len(rep.MisclassificationPatterns) != 3 {
		t.Fatalf("got %d patterns, want 3", len(rep.MisclassificationPatterns))
	}
	p := rep.MisclassificationPatterns
	if p[0].Expected != corpus.IntentTaskQuery || p[0].Count != 2 {
		t.Errorf("pattern[0] = %+v, want task_query -> note_taking x2", p[0])
	}
	if p[1].Expected != corpus.IntentGoalSetting {
		t.Errorf("pattern[1] = %+v, ties must keep first-encountered order", p[1])
	}
	if p[2].Expected != corpus.IntentHabitTracking {
		t.Errorf("pattern[2] = %+v, ties must keep first-encountered order", p[2])
	}
}

func TestAggregateExcludesConfidenceOnlyFailures(t *testing.T) {
	// Right intent, confidence below the case minimum: failed but not a
	// misclassification.
	low := mkResult(corpus.IntentTaskQuery, corpus.IntentTaskQuery, corpus.CategoryBasic, false)
	rep := Aggregate([]Result{low})

	if rep.Failed != 1 {
		t.Errorf("failed = %d, want 1", rep.Failed)
	}
	if len(rep.MisclassificationPatterns) != 0 {
		t.Errorf("confidence-only failure produced patterns: %+v", rep.MisclassificationPatterns)
	}
}

func TestAggregateErrorSentinelIsPattern(t *testing.T) {
	errored := mkResult(corpus.IntentTaskQuery, corpus.IntentError, corpus.CategoryBasic, false)
	rep := Aggregate([]Result{errored})

	if len(rep.MisclassificationPatterns) != 1 {
		t.Fatalf("got %d patterns, want 1", len(rep.MisclassificationPatterns))
	}
	if rep.MisclassificationPatterns[0].Actual != corpus.IntentError {
		t.Errorf("pattern actual = %s, want error sentinel", rep.MisclassificationPatterns[0].Actual)
	}
}
