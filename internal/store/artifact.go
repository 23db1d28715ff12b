// Package store persists run results: JSON artifacts for baseline
// benchmarking and a SQLite history of run summaries.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"intentbench/internal/evaluation"
	"intentbench/internal/logging"
)

// Artifact is one persisted run: the raw per-case results plus
// metadata. Written by --output, read back later as a baseline.
type Artifact struct {
	RunID      string              `json:"run_id"`
	CreatedAt  time.Time           `json:"created_at"`
	Classifier string              `json:"classifier"`
	Category   string              `json:"category,omitempty"`
	Results    []evaluation.Result `json:"results"`
}

// NewArtifact assembles an artifact for the given run.
func NewArtifact(classifierName, category string, results []evaluation.Result) *Artifact {
	return &Artifact{
		RunID:      uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Classifier: classifierName,
		Category:   category,
		Results:    results,
	}
}

// Save writes the artifact as one JSON document, creating parent
// directories as needed.
func (a *Artifact) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	logging.Store("Artifact %s written to %s (%d results)", a.RunID, path, len(a.Results))
	return nil
}

// LoadArtifact reads a previously saved artifact.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if len(a.Results) == 0 {
		return nil, fmt.Errorf("artifact %s contains no results", path)
	}

	logging.StoreDebug("Loaded artifact %s (%d results)", path, len(a.Results))
	return &a, nil
}
