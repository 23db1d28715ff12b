package classifier

import (
	"context"
	"strings"

	"intentbench/internal/corpus"
	"intentbench/internal/logging"
)

// fallbackConfidence is reported when no signal resolves an intent.
const fallbackConfidence = 0.3

// signal is a weighted phrase or keyword associated with an intent.
// Phrases (containing a space) score higher than lone keywords.
type signal struct {
	text   string
	weight int
}

// KeywordClassifier is a deterministic lexical classifier. It scores
// each intent by matched signals and falls back to general_assistance
// when nothing matches or the top candidates tie.
type KeywordClassifier struct {
	signals map[corpus.Intent][]signal
}

// NewKeywordClassifier builds the classifier with its built-in signal table.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{signals: defaultSignals()}
}

// Name identifies the classifier in reports.
func (k *KeywordClassifier) Name() string { return "keyword" }

// Classify scores the input against every intent's signal list.
// Deterministic: same input always yields the same prediction.
func (k *KeywordClassifier) Classify(ctx context.Context, input string) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" || !hasLetter(normalized) {
		return Prediction{Intent: corpus.IntentGeneralAssistance, Confidence: fallbackConfidence}, nil
	}

	best := corpus.IntentGeneralAssistance
	bestScore, secondScore := 0, 0
	for _, intent := range corpus.AllIntents {
		score := 0
		for _, s := range k.signals[intent] {
			if strings.Contains(normalized, s.text) {
				score += s.weight
			}
		}
		if score > bestScore {
			secondScore = bestScore
			best, bestScore = intent, score
		} else if score > secondScore {
			secondScore = score
		}
	}

	// No signal, or a dead heat between intents, is ambiguity: resolve
	// to the fallback intent at low confidence.
	if bestScore == 0 || bestScore == secondScore {
		logging.ClassifierDebug("keyword: ambiguous input %q (best=%d second=%d)", truncate(input, 60), bestScore, secondScore)
		return Prediction{Intent: corpus.IntentGeneralAssistance, Confidence: fallbackConfidence}, nil
	}

	confidence := 0.35 + 0.15*float64(bestScore)
	if confidence > 0.95 {
		confidence = 0.95
	}
	return Prediction{Intent: best, Confidence: confidence}, nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || r > 127 {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// defaultSignals maps each intent to its lexical evidence. Misspelled
// variants cover the typo bucket; non-English keywords cover the
// multilingual bucket.
func defaultSignals() map[corpus.Intent][]signal {
	return map[corpus.Intent][]signal{
		corpus.IntentTaskCreation: {
			{text: "create a task", weight: 3},
			{text: "add a new task", weight: 3},
			{text: "add a task", weight: 3},
			{text: "remind me to", weight: 3},
			{text: "add", weight: 1},
			{text: "create", weight: 1},
			{text: "to my list", weight: 2},
			{text: "task", weight: 1},
			{text: "creat", weight: 1},
			{text: "tsak", weight: 2},
			{text: "tarea", weight: 2},
			{text: "crear", weight: 1},
			{text: "aufgabe", weight: 2},
			{text: "erstellen", weight: 1},
		},
		corpus.IntentTaskQuery: {
			{text: "what tasks", weight: 3},
			{text: "show me my", weight: 2},
			{text: "my tasks", weight: 2},
			{text: "open tasks", weight: 2},
			{text: "overdue", weight: 2},
			{text: "which tasks", weight: 3},
			{text: "did i finish", weight: 3},
			{text: "on my plate", weight: 3},
			{text: "waht tasks", weight: 3},
			{text: "hvae", weight: 1},
			{text: "taches", weight: 3},
			{text: "do i have", weight: 1},
		},
		corpus.IntentGoalSetting: {
			{text: "set a goal", weight: 3},
			{text: "fitness goal", weight: 3},
			{text: "goal", weight: 1},
			{text: "i want to", weight: 2},
			{text: "this year", weight: 1},
			{text: "meta", weight: 2},
			{text: "criar uma meta", weight: 3},
		},
		corpus.IntentNoteTaking: {
			{text: "take a note", weight: 3},
			{text: "note down", weight: 3},
			{text: "write down", weight: 3},
			{text: "jot", weight: 3},
			{text: "note", weight: 1},
			{text: "noet", weight: 2},
			{text: "tak a", weight: 1},
		},
		corpus.IntentScheduleManagement: {
			{text: "schedule a meeting", weight: 3},
			{text: "schedule", weight: 2},
			{text: "block time", weight: 3},
			{text: "pencil me in", weight: 3},
			{text: "move it to", weight: 3},
			{text: "meeting", weight: 1},
			{text: "shedule", weight: 2},
			{text: "meetign", weight: 1},
			{text: "agendar", weight: 2},
			{text: "reunion", weight: 1},
			{text: "at ", weight: 1},
		},
		corpus.IntentHabitTracking: {
			{text: "habit", weight: 2},
			{text: "streak", weight: 3},
			{text: "track", weight: 1},
			{text: "daily", weight: 1},
			{text: "mark my", weight: 2},
			{text: "as done", weight: 2},
			{text: "recurring every", weight: 3},
			{text: "habbit", weight: 2},
			{text: "trak", weight: 1},
		},
		corpus.IntentAnalyticsRequest: {
			{text: "how productive", weight: 3},
			{text: "stats", weight: 3},
			{text: "analytics", weight: 3},
			{text: "completion", weight: 1},
			{text: "last week", weight: 1},
			{text: "this month", weight: 1},
		},
		corpus.IntentWorkflowOptimization: {
			{text: "organize my workflow", weight: 3},
			{text: "workflow", weight: 2},
			{text: "better way", weight: 2},
			{text: "suggest", weight: 1},
			{text: "improve", weight: 1},
			{text: "plan my day", weight: 2},
		},
		corpus.IntentGeneralAssistance: {
			{text: "hello", weight: 2},
			{text: "what can you do", weight: 3},
			{text: "help", weight: 2},
		},
	}
}
