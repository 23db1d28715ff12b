package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"intentbench/internal/corpus"
	"intentbench/internal/evaluation"
)

func sampleResults() []evaluation.Result {
	return []evaluation.Result{
		{
			TestCase:         corpus.TestCase{Input: "create a task", ExpectedIntent: corpus.IntentTaskCreation, Category: corpus.CategoryBasic},
			ActualIntent:     corpus.IntentTaskCreation,
			ActualConfidence: 0.9,
			ExecutionTimeMs:  3,
			Passed:           true,
		},
		{
			TestCase:         corpus.TestCase{Input: "garbage", ExpectedIntent: corpus.IntentTaskQuery, Category: corpus.CategoryBasic},
			ActualIntent:     corpus.IntentError,
			ActualConfidence: 0,
			Passed:           false,
			Error:            "backend unavailable",
		},
	}
}

func TestArtifactRoundtrip(t *testing.T) {
	a := NewArtifact("keyword", "basic", sampleResults())
	if a.RunID == "" {
		t.Fatal("artifact has no run id")
	}

	path := filepath.Join(t.TempDir(), "runs", "baseline.json")
	if err := a.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadArtifact(path)
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	if loaded.RunID != a.RunID || loaded.Classifier != "keyword" || loaded.Category != "basic" {
		t.Errorf("metadata mismatch: %+v", loaded)
	}
	if diff := cmp.Diff(a.Results, loaded.Results); diff != "" {
		t.Errorf("results changed across roundtrip (-saved +loaded):\n%s", diff)
	}
}

func TestLoadArtifactMissingFile(t *testing.T) {
	if _, err := LoadArtifact(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadArtifactInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArtifact(path); err == nil {
		t.Fatal("expected error for malformed artifact")
	}
}

func TestLoadArtifactEmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"run_id":"x","results":[]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArtifact(path); err == nil {
		t.Fatal("expected error for artifact without results")
	}
}
