// Package report renders run results for the console.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"intentbench/internal/benchmark"
	"intentbench/internal/corpus"
	"intentbench/internal/evaluation"
	"intentbench/internal/logging"
)

// failedSampleLimit bounds the failed-case sample in verbose output.
const failedSampleLimit = 5

// patternLimit bounds the misclassification pattern listing.
const patternLimit = 10

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Render builds the human-readable report for one run. Verbose adds
// the category/intent breakdowns, a bounded failed-case sample, and
// the top misclassification patterns.
func Render(rep *evaluation.Report, results []evaluation.Result, verbose bool) string {
	timer := logging.StartTimer(logging.CategoryReport, "Render")
	defer timer.Stop()

	var b strings.Builder

	b.WriteString(titleStyle.Render("Intent Accuracy Report"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Total:      %d\n", rep.TotalTests)
	fmt.Fprintf(&b, "  Passed:     %s\n", passStyle.Render(fmt.Sprintf("%d", rep.Passed)))
	fmt.Fprintf(&b, "  Failed:     %s\n", failStyle.Render(fmt.Sprintf("%d", rep.Failed)))
	fmt.Fprintf(&b, "  Accuracy:   %.1f%%\n", rep.Accuracy*100)
	fmt.Fprintf(&b, "  Avg conf:   %.3f\n", rep.AvgConfidence)
	fmt.Fprintf(&b, "  Avg time:   %.1fms\n", rep.AvgExecutionTimeMs)

	if !verbose {
		return b.String()
	}

	b.WriteString("\n" + sectionStyle.Render("By category") + "\n")
	for _, cat := range corpus.AllCategories {
		stat, ok := rep.CategoryBreakdown[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %-14s %3d/%3d  %.1f%%\n", cat, stat.Passed, stat.Total, stat.Accuracy*100)
	}

	b.WriteString("\n" + sectionStyle.Render("By intent") + "\n")
	for _, intent := range sortedIntents(rep.IntentBreakdown) {
		stat := rep.IntentBreakdown[intent]
		fmt.Fprintf(&b, "  %-24s %3d/%3d  %.1f%%\n", intent, stat.Passed, stat.Total, stat.Accuracy*100)
	}

	failed := failedSample(results)
	if len(failed) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Failed cases (sample)") + "\n")
		for _, r := range failed {
			reason := fmt.Sprintf("got %s (%.2f)", r.ActualIntent, r.ActualConfidence)
			if r.Error != "" {
				reason = "error: " + r.Error
			}
			fmt.Fprintf(&b, "  %s\n    expected %s, %s\n",
				failStyle.Render(fmt.Sprintf("%q", r.TestCase.Input)), r.TestCase.ExpectedIntent, reason)
		}
	}

	if len(rep.MisclassificationPatterns) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Misclassification patterns") + "\n")
		patterns := rep.MisclassificationPatterns
		if len(patterns) > patternLimit {
			patterns = patterns[:patternLimit]
		}
		for _, p := range patterns {
			fmt.Fprintf(&b, "  %s -> %s  x%d\n", p.Expected, p.Actual, p.Count)
		}
	}

	return b.String()
}

// RenderComparison builds the baseline comparison block.
func RenderComparison(cmp benchmark.Comparison) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Baseline Comparison"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Accuracy:   %s\n", renderDelta(cmp.AccuracyChange*100, "%+.1f%%"))
	fmt.Fprintf(&b, "  Avg conf:   %s\n", renderDelta(cmp.ConfidenceChange, "%+.3f"))
	fmt.Fprintf(&b, "  Avg time:   %+.1fms\n", cmp.ExecutionTimeChange)

	if len(cmp.ImprovedIntents) > 0 {
		fmt.Fprintf(&b, "  Improved:   %s\n", passStyle.Render(joinIntents(cmp.ImprovedIntents)))
	}
	if len(cmp.DegradedIntents) > 0 {
		fmt.Fprintf(&b, "  Degraded:   %s\n", failStyle.Render(joinIntents(cmp.DegradedIntents)))
	}
	if len(cmp.ImprovedIntents) == 0 && len(cmp.DegradedIntents) == 0 {
		b.WriteString(dimStyle.Render("  No per-intent accuracy movement") + "\n")
	}
	return b.String()
}

// RenderStats builds the dataset statistics block. The mean minimum
// confidence prints "n/a" when no case specifies one.
func RenderStats(s corpus.Stats) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dataset Statistics"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Cases:      %d\n", s.Total)

	meanConf := "n/a"
	if s.HasMinConfidence {
		meanConf = fmt.Sprintf("%.3f", s.MeanMinConfidence)
	}
	fmt.Fprintf(&b, "  Mean min confidence: %s\n", meanConf)

	if len(s.Languages) > 0 {
		fmt.Fprintf(&b, "  Languages:  %s\n", strings.Join(s.Languages, ", "))
	}

	b.WriteString("\n" + sectionStyle.Render("By category") + "\n")
	for _, cat := range corpus.AllCategories {
		if n, ok := s.PerCategory[cat]; ok {
			fmt.Fprintf(&b, "  %-14s %d\n", cat, n)
		}
	}

	b.WriteString("\n" + sectionStyle.Render("By intent") + "\n")
	for _, intent := range corpus.AllIntents {
		if n, ok := s.PerIntent[intent]; ok {
			fmt.Fprintf(&b, "  %-24s %d\n", intent, n)
		}
	}
	return b.String()
}

func renderDelta(v float64, format string) string {
	s := fmt.Sprintf(format, v)
	switch {
	case v > 0:
		return passStyle.Render(s)
	case v < 0:
		return failStyle.Render(s)
	default:
		return s
	}
}

func failedSample(results []evaluation.Result) []evaluation.Result {
	var failed []evaluation.Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
			if len(failed) == failedSampleLimit {
				break
			}
		}
	}
	return failed
}

func sortedIntents(breakdown map[corpus.Intent]evaluation.BucketStat) []corpus.Intent {
	intents := make([]corpus.Intent, 0, len(breakdown))
	for intent := range breakdown {
		intents = append(intents, intent)
	}
	sort.Slice(intents, func(i, j int) bool { return intents[i] < intents[j] })
	return intents
}

func joinIntents(intents []corpus.Intent) string {
	names := make([]string, len(intents))
	for i, intent := range intents {
		names[i] = string(intent)
	}
	return strings.Join(names, ", ")
}
