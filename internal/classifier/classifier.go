// Package classifier defines the classifier-under-test capability and
// the concrete classifiers that ship with the harness. The evaluation
// engine only ever talks to the Classifier interface, so any
// implementation (in-process, HTTP, embedded model) can be substituted
// without touching the engine.
package classifier

import (
	"context"
	"fmt"

	"intentbench/internal/corpus"
	"intentbench/internal/embedding"
)

// Prediction is the classifier output for a single input.
type Prediction struct {
	Intent     corpus.Intent
	Confidence float64 // [0,1]
}

// Classifier is the capability consumed by the evaluation engine.
type Classifier interface {
	// Name identifies the classifier in reports and artifacts.
	Name() string

	// Classify predicts an intent and confidence for the input.
	// Implementations must honor ctx cancellation; a returned error
	// marks the case failed but never aborts the suite.
	Classify(ctx context.Context, input string) (Prediction, error)
}

// Config selects and tunes a classifier implementation.
type Config struct {
	// Provider: "keyword" (default) or "semantic"
	Provider string `yaml:"provider"`

	// Semantic classifier tuning
	TopK          int     `yaml:"top_k"`
	MinSimilarity float64 `yaml:"min_similarity"`

	// Embedding backend for the semantic classifier
	Embedding embedding.Config `yaml:"embedding"`
}

// DefaultConfig returns the default classifier selection.
func DefaultConfig() Config {
	return Config{
		Provider:      "keyword",
		TopK:          5,
		MinSimilarity: 0.5,
		Embedding:     embedding.DefaultConfig(),
	}
}

// New creates a classifier from config.
func New(ctx context.Context, cfg Config) (Classifier, error) {
	switch cfg.Provider {
	case "keyword", "":
		return NewKeywordClassifier(), nil
	case "semantic":
		engine, err := embedding.NewEngine(cfg.Embedding)
		if err != nil {
			return nil, fmt.Errorf("semantic classifier setup: %w", err)
		}
		return NewSemanticClassifier(ctx, engine, cfg.TopK, cfg.MinSimilarity)
	default:
		return nil, fmt.Errorf("unknown classifier provider: %s", cfg.Provider)
	}
}
