// Package corpus defines the labeled test case corpus used to evaluate
// intent classifiers. The corpus is a versioned, deterministic set of
// hand-authored cases grouped into buckets; enumeration order is the
// concatenation order of the buckets so failures stay reproducible.
package corpus

import (
	"fmt"
	"strings"
)

// =============================================================================
// CLOSED VOCABULARIES
// =============================================================================

// Intent is a closed label vocabulary shared between the corpus and any
// classifier under test. Both sides must agree on this set or evaluation
// is meaningless.
type Intent string

const (
	IntentTaskCreation         Intent = "task_creation"
	IntentTaskQuery            Intent = "task_query"
	IntentGoalSetting          Intent = "goal_setting"
	IntentNoteTaking           Intent = "note_taking"
	IntentScheduleManagement   Intent = "schedule_management"
	IntentHabitTracking        Intent = "habit_tracking"
	IntentAnalyticsRequest     Intent = "analytics_request"
	IntentWorkflowOptimization Intent = "workflow_optimization"
	IntentGeneralAssistance    Intent = "general_assistance"
)

// IntentError is the sentinel recorded when a classifier invocation
// fails or times out. It is never a valid expected intent.
const IntentError Intent = "error"

// AllIntents lists the vocabulary in a stable order.
var AllIntents = []Intent{
	IntentTaskCreation,
	IntentTaskQuery,
	IntentGoalSetting,
	IntentNoteTaking,
	IntentScheduleManagement,
	IntentHabitTracking,
	IntentAnalyticsRequest,
	IntentWorkflowOptimization,
	IntentGeneralAssistance,
}

// IsValid reports whether the intent is part of the agreed vocabulary.
func (i Intent) IsValid() bool {
	for _, known := range AllIntents {
		if i == known {
			return true
		}
	}
	return false
}

// Category classifies a test case by the kind of difficulty it probes.
type Category string

const (
	CategoryBasic        Category = "basic"
	CategoryEdgeCase     Category = "edge_case"
	CategoryAmbiguous    Category = "ambiguous"
	CategoryMultilingual Category = "multilingual"
	CategoryTypos        Category = "typos"
	CategorySlang        Category = "slang"
)

// AllCategories lists the category vocabulary in a stable order.
var AllCategories = []Category{
	CategoryBasic,
	CategoryEdgeCase,
	CategoryAmbiguous,
	CategoryMultilingual,
	CategoryTypos,
	CategorySlang,
}

// IsValid reports whether the category is known.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q (valid: %s)", s, joinCategories())
	}
	return c, nil
}

func joinCategories() string {
	names := make([]string, len(AllCategories))
	for i, c := range AllCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// =============================================================================
// TEST CASE
// =============================================================================

// TestCase is an immutable labeled record. Input may be empty or garbage;
// edge cases are intentional corpus members and must not be skipped.
// MinConfidence, when present, is the minimum confidence the classifier
// must report for the case to pass; nil means any confidence passes.
type TestCase struct {
	Input          string   `yaml:"input" json:"input"`
	ExpectedIntent Intent   `yaml:"expected_intent" json:"expected_intent"`
	MinConfidence  *float64 `yaml:"min_confidence,omitempty" json:"min_confidence,omitempty"`
	Category       Category `yaml:"category" json:"category"`
	Language       string   `yaml:"language,omitempty" json:"language,omitempty"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// Validate checks a single case against the closed vocabularies.
func (tc TestCase) Validate() error {
	if !tc.ExpectedIntent.IsValid() {
		return fmt.Errorf("test case %q: expected intent %q is not in the intent vocabulary", tc.Input, tc.ExpectedIntent)
	}
	if !tc.Category.IsValid() {
		return fmt.Errorf("test case %q: category %q is not in the category vocabulary", tc.Input, tc.Category)
	}
	if tc.MinConfidence != nil && (*tc.MinConfidence < 0 || *tc.MinConfidence > 1) {
		return fmt.Errorf("test case %q: min confidence %.3f outside [0,1]", tc.Input, *tc.MinConfidence)
	}
	return nil
}
