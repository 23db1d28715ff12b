package benchmark

import (
	"testing"

	"intentbench/internal/corpus"
	"intentbench/internal/evaluation"
)

func result(expected corpus.Intent, passed bool, confidence float64) evaluation.Result {
	actual := expected
	if !passed {
		actual = corpus.IntentGeneralAssistance
	}
	return evaluation.Result{
		TestCase:         corpus.TestCase{Input: "x", ExpectedIntent: expected, Category: corpus.CategoryBasic},
		ActualIntent:     actual,
		ActualConfidence: confidence,
		Passed:           passed,
	}
}

func TestCompareIdenticalRuns(t *testing.T) {
	results := []evaluation.Result{
		result(corpus.IntentTaskCreation, true, 0.9),
		result(corpus.IntentTaskQuery, false, 0.4),
	}

	cmp := Compare(results, results, 0)
	if cmp.AccuracyChange != 0 || cmp.ConfidenceChange != 0 || cmp.ExecutionTimeChange != 0 {
		t.Errorf("self-comparison has nonzero deltas: %+v", cmp)
	}
	if len(cmp.ImprovedIntents) != 0 || len(cmp.DegradedIntents) != 0 {
		t.Errorf("self-comparison moved intents: %+v", cmp)
	}
}

func TestCompareBucketsIntents(t *testing.T) {
	baseline := []evaluation.Result{
		result(corpus.IntentTaskCreation, false, 0.4),
		result(corpus.IntentTaskQuery, true, 0.8),
	}
	current := []evaluation.Result{
		result(corpus.IntentTaskCreation, true, 0.9),
		result(corpus.IntentTaskQuery, false, 0.3),
	}

	cmp := Compare(baseline, current, 0)
	if cmp.AccuracyChange != 0 {
		t.Errorf("accuracy change = %f, want 0 (1/2 both sides)", cmp.AccuracyChange)
	}
	if len(cmp.ImprovedIntents) != 1 || cmp.ImprovedIntents[0] != corpus.IntentTaskCreation {
		t.Errorf("improved = %v, want [task_creation]", cmp.ImprovedIntents)
	}
	if len(cmp.DegradedIntents) != 1 || cmp.DegradedIntents[0] != corpus.IntentTaskQuery {
		t.Errorf("degraded = %v, want [task_query]", cmp.DegradedIntents)
	}
}

func TestCompareEpsilonSuppressesNoise(t *testing.T) {
	// task_creation moves from 1/2 to 2/2, a 0.5 delta. An epsilon of
	// 0.6 treats that as noise.
	baseline := []evaluation.Result{
		result(corpus.IntentTaskCreation, true, 0.8),
		result(corpus.IntentTaskCreation, false, 0.4),
	}
	current := []evaluation.Result{
		result(corpus.IntentTaskCreation, true, 0.8),
		result(corpus.IntentTaskCreation, true, 0.8),
	}

	if cmp := Compare(baseline, current, 0.6); len(cmp.ImprovedIntents) != 0 {
		t.Errorf("epsilon 0.6 still reported improvements: %v", cmp.ImprovedIntents)
	}
	if cmp := Compare(baseline, current, 0.4); len(cmp.ImprovedIntents) != 1 {
		t.Errorf("epsilon 0.4 missed the improvement: %+v", cmp)
	}
}

func TestCompareNegativeEpsilonTreatedAsZero(t *testing.T) {
	results := []evaluation.Result{result(corpus.IntentTaskCreation, true, 0.9)}

	// With a raw negative epsilon an unchanged intent would land in
	// both lists; it must land in neither.
	cmp := Compare(results, results, -1)
	if len(cmp.ImprovedIntents) != 0 || len(cmp.DegradedIntents) != 0 {
		t.Errorf("negative epsilon misbucketed intents: %+v", cmp)
	}
}

func TestCompareIntentOnlyOnOneSide(t *testing.T) {
	baseline := []evaluation.Result{result(corpus.IntentTaskCreation, true, 0.9)}
	current := []evaluation.Result{
		result(corpus.IntentTaskCreation, true, 0.9),
		result(corpus.IntentNoteTaking, true, 0.8),
	}

	cmp := Compare(baseline, current, 0)
	found := false
	for _, intent := range cmp.ImprovedIntents {
		if intent == corpus.IntentNoteTaking {
			found = true
		}
	}
	if !found {
		t.Errorf("intent new to the current run (0 -> 1 accuracy) not reported improved: %+v", cmp)
	}
}

func TestCompareEmptyRuns(t *testing.T) {
	cmp := Compare(nil, nil, 0)
	if cmp.AccuracyChange != 0 || len(cmp.ImprovedIntents) != 0 || len(cmp.DegradedIntents) != 0 {
		t.Errorf("comparing empty runs produced %+v", cmp)
	}
}
