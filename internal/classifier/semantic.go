package classifier

import (
	"context"
	"fmt"
	"strings"

	"intentbench/internal/corpus"
	"intentbench/internal/embedding"
	"intentbench/internal/logging"
)

// exemplar is a canonical phrase for an intent. The semantic classifier
// embeds all exemplars once at construction and classifies by nearest
// neighbors over them.
type exemplar struct {
	text   string
	intent corpus.Intent
}

// SemanticClassifier performs vector-based intent classification:
// embed the input, find the top-K nearest exemplars, and take a
// similarity-weighted vote.
type SemanticClassifier struct {
	engine        embedding.Engine
	exemplars     []exemplar
	vectors       [][]float32
	topK          int
	minSimilarity float64
}

// NewSemanticClassifier embeds the exemplar corpus up front. The batch
// embed is the only remote call outside Classify.
func NewSemanticClassifier(ctx context.Context, engine embedding.Engine, topK int, minSimilarity float64) (*SemanticClassifier, error) {
	if engine == nil {
		return nil, fmt.Errorf("embedding engine is required")
	}
	if topK <= 0 {
		topK = 5
	}
	if minSimilarity <= 0 {
		minSimilarity = 0.5
	}

	exemplars := defaultExemplars()
	texts := make([]string, len(exemplars))
	for i, ex := range exemplars {
		texts[i] = ex.text
	}

	timer := logging.StartTimer(logging.CategoryClassifier, "SemanticClassifier exemplar embed")
	vectors, err := engine.EmbedBatch(ctx, texts)
	timer.Stop()
	if err != nil {
		return nil, fmt.Errorf("failed to embed exemplar corpus: %w", err)
	}
	if len(vectors) != len(exemplars) {
		return nil, fmt.Errorf("exemplar embed returned %d vectors for %d texts", len(vectors), len(exemplars))
	}

	logging.Classifier("SemanticClassifier ready: %d exemplars, engine=%s", len(exemplars), engine.Name())

	return &SemanticClassifier{
		engine:        engine,
		exemplars:     exemplars,
		vectors:       vectors,
		topK:          topK,
		minSimilarity: minSimilarity,
	}, nil
}

// Name identifies the classifier in reports.
func (s *SemanticClassifier) Name() string {
	return fmt.Sprintf("semantic(%s)", s.engine.Name())
}

// Classify embeds the input and votes over the nearest exemplars.
func (s *SemanticClassifier) Classify(ctx context.Context, input string) (Prediction, error) {
	if strings.TrimSpace(input) == "" {
		return Prediction{Intent: corpus.IntentGeneralAssistance, Confidence: fallbackConfidence}, nil
	}

	query, err := s.engine.Embed(ctx, input)
	if err != nil {
		return Prediction{}, fmt.Errorf("query embed failed: %w", err)
	}

	top := embedding.FindTopK(query, s.vectors, s.topK)
	if len(top) == 0 || top[0].Similarity < s.minSimilarity {
		return Prediction{Intent: corpus.IntentGeneralAssistance, Confidence: fallbackConfidence}, nil
	}

	// Similarity-weighted vote across the neighborhood.
	votes := make(map[corpus.Intent]float64)
	counts := make(map[corpus.Intent]int)
	for _, r := range top {
		if r.Similarity < s.minSimilarity {
			continue
		}
		intent := s.exemplars[r.Index].intent
		votes[intent] += r.Similarity
		counts[intent]++
	}

	var best corpus.Intent
	bestVote := -1.0
	for _, intent := range corpus.AllIntents {
		if votes[intent] > bestVote {
			best, bestVote = intent, votes[intent]
		}
	}

	confidence := bestVote / float64(counts[best])
	if confidence > 1 {
		confidence = 1
	}
	logging.ClassifierDebug("semantic: %q -> %s (%.3f, votes=%d)", truncate(input, 60), best, confidence, counts[best])
	return Prediction{Intent: best, Confidence: confidence}, nil
}

// defaultExemplars is the canonical phrase set, a few per intent.
func defaultExemplars() []exemplar {
	return []exemplar{
		{"create a task to do something", corpus.IntentTaskCreation},
		{"add a new task to my list", corpus.IntentTaskCreation},
		{"remind me to do something later", corpus.IntentTaskCreation},
		{"what tasks do I have", corpus.IntentTaskQuery},
		{"show me my open tasks", corpus.IntentTaskQuery},
		{"which of my tasks are overdue", corpus.IntentTaskQuery},
		{"set a goal for this year", corpus.IntentGoalSetting},
		{"I want to achieve something big", corpus.IntentGoalSetting},
		{"take a note about this", corpus.IntentNoteTaking},
		{"write down what I just said", corpus.IntentNoteTaking},
		{"schedule a meeting with someone", corpus.IntentScheduleManagement},
		{"block time on my calendar", corpus.IntentScheduleManagement},
		{"move my appointment to another day", corpus.IntentScheduleManagement},
		{"mark my habit as done today", corpus.IntentHabitTracking},
		{"track a daily habit", corpus.IntentHabitTracking},
		{"how is my streak going", corpus.IntentHabitTracking},
		{"how productive was I recently", corpus.IntentAnalyticsRequest},
		{"show my completion statistics", corpus.IntentAnalyticsRequest},
		{"how can I organize my workflow better", corpus.IntentWorkflowOptimization},
		{"suggest a better way to plan my work", corpus.IntentWorkflowOptimization},
		{"hello there", corpus.IntentGeneralAssistance},
		{"what can you help me with", corpus.IntentGeneralAssistance},
	}
}
