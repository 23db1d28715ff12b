// Package benchmark compares two evaluation runs. Compare is a pure
// function over raw result sets: it recomputes aggregate statistics
// from each side rather than trusting pre-aggregated reports, which
// keeps it robust to schema drift between stored baselines and the
// current run.
package benchmark

import (
	"sort"

	"intentbench/internal/corpus"
	"intentbench/internal/evaluation"
	"intentbench/internal/logging"
)

// Comparison holds signed deltas (current - baseline) and the intents
// whose accuracy moved beyond the noise threshold.
type Comparison struct {
	AccuracyChange      float64 `json:"accuracy_change"`
	ConfidenceChange    float64 `json:"confidence_change"`
	ExecutionTimeChange float64 `json:"execution_time_change_ms"`

	ImprovedIntents []corpus.Intent `json:"improved_intents"`
	DegradedIntents []corpus.Intent `json:"degraded_intents"`
}

// Compare recomputes aggregates from both raw result sets and diffs
// them. epsilon is the per-intent noise threshold: only accuracy deltas
// strictly beyond it count as improved or degraded. Unchanged intents
// appear in neither list. An epsilon below zero is treated as zero.
func Compare(baseline, current []evaluation.Result, epsilon float64) Comparison {
	if epsilon < 0 {
		epsilon = 0
	}

	base := evaluation.Aggregate(baseline)
	curr := evaluation.Aggregate(current)

	cmp := Comparison{
		AccuracyChange:      curr.Accuracy - base.Accuracy,
		ConfidenceChange:    curr.AvgConfidence - base.AvgConfidence,
		ExecutionTimeChange: curr.AvgExecutionTimeMs - base.AvgExecutionTimeMs,
	}

	// Union of intents seen on either side, in stable order.
	seen := make(map[corpus.Intent]bool)
	var intents []corpus.Intent
	for intent := range base.IntentBreakdown {
		if !seen[intent] {
			seen[intent] = true
			intents = append(intents, intent)
		}
	}
	for intent := range curr.IntentBreakdown {
		if !seen[intent] {
			seen[intent] = true
			intents = append(intents, intent)
		}
	}
	sort.Slice(intents, func(i, j int) bool { return intents[i] < intents[j] })

	for _, intent := range intents {
		delta := curr.IntentBreakdown[intent].Accuracy - base.IntentBreakdown[intent].Accuracy
		switch {
		case delta > epsilon:
			cmp.ImprovedIntents = append(cmp.ImprovedIntents, intent)
		case delta < -epsilon:
			cmp.DegradedIntents = append(cmp.DegradedIntents, intent)
		}
	}

	logging.Benchmark("Compared runs: accuracy %+.3f, improved=%d degraded=%d",
		cmp.AccuracyChange, len(cmp.ImprovedIntents), len(cmp.DegradedIntents))
	return cmp
}
