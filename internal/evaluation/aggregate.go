package evaluation

import (
	"sort"

	"intentbench/internal/corpus"
)

// BucketStat summarizes one category or intent bucket. An empty bucket
// reports accuracy 0 with total 0, never NaN.
type BucketStat struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Accuracy float64 `json:"accuracy"`
}

// Pattern is one misclassification (expected, actual) pair and how
// often it occurred among failed cases.
type Pattern struct {
	Expected corpus.Intent `json:"expected"`
	Actual   corpus.Intent `json:"actual"`
	Count    int           `json:"count"`
}

// Report is the aggregate of one run. Derived, recomputed per run,
// owned by the run that produced it.
type Report struct {
	TotalTests         int                            `json:"total_tests"`
	Passed             int                            `json:"passed"`
	Failed             int                            `json:"failed"`
	Accuracy           float64                        `json:"accuracy"`
	AvgConfidence      float64                        `json:"avg_confidence"`
	AvgExecutionTimeMs float64                        `json:"avg_execution_time_ms"`
	CategoryBreakdown  map[corpus.Category]BucketStat `json:"category_breakdown"`
	IntentBreakdown    map[corpus.Intent]BucketStat   `json:"intent_breakdown"`

	// MisclassificationPatterns is sorted by count descending, ties
	// broken by first-encountered order. Confidence-only failures
	// (right intent, confidence below minimum) never appear here.
	MisclassificationPatterns []Pattern `json:"misclassification_patterns"`
}

// Aggregate folds a result multiset into a report. The fold is
// commutative over results, so sequential and parallel runs aggregate
// identically.
func Aggregate(results []Result) *Report {
	rep := &Report{
		TotalTests:        len(results),
		CategoryBreakdown: make(map[corpus.Category]BucketStat),
		IntentBreakdown:   make(map[corpus.Intent]BucketStat),
	}

	confSum := 0.0
	timeSum := 0.0
	type patternKey struct{ expected, actual corpus.Intent }
	patternIdx := make(map[patternKey]int)

	for _, r := range results {
		if r.Passed {
			rep.Passed++
		} else {
			rep.Failed++
		}
		confSum += r.ActualConfidence
		timeSum += float64(r.ExecutionTimeMs)

		cat := rep.CategoryBreakdown[r.TestCase.Category]
		cat.Total++
		if r.Passed {
			cat.Passed++
		}
		rep.CategoryBreakdown[r.TestCase.Category] = cat

		intent := rep.IntentBreakdown[r.TestCase.ExpectedIntent]
		intent.Total++
		if r.Passed {
			intent.Passed++
		}
		rep.IntentBreakdown[r.TestCase.ExpectedIntent] = intent

		if !r.Passed && r.ActualIntent != r.TestCase.ExpectedIntent {
			key := patternKey{r.TestCase.ExpectedIntent, r.ActualIntent}
			if idx, ok := patternIdx[key]; ok {
				rep.MisclassificationPatterns[idx].Count++
			} else {
				patternIdx[key] = len(rep.MisclassificationPatterns)
				rep.MisclassificationPatterns = append(rep.MisclassificationPatterns, Pattern{
					Expected: key.expected,
					Actual:   key.actual,
					Count:    1,
				})
			}
		}
	}

	if rep.TotalTests > 0 {
		rep.Accuracy = float64(rep.Passed) / float64(rep.TotalTests)
		rep.AvgConfidence = confSum / float64(rep.TotalTests)
		rep.AvgExecutionTimeMs = timeSum / float64(rep.TotalTests)
	}

	for cat, stat := range rep.CategoryBreakdown {
		if stat.Total > 0 {
			stat.Accuracy = float64(stat.Passed) / float64(stat.Total)
		}
		rep.CategoryBreakdown[cat] = stat
	}
	for intent, stat := range rep.IntentBreakdown {
		if stat.Total > 0 {
			stat.Accuracy = float64(stat.Passed) / float64(stat.Total)
		}
		rep.IntentBreakdown[intent] = stat
	}

	// Stable sort keeps first-encountered order for equal counts.
	sort.SliceStable(rep.MisclassificationPatterns, func(i, j int) bool {
		return rep.MisclassificationPatterns[i].Count > rep.MisclassificationPatterns[j].Count
	})

	return rep
}
