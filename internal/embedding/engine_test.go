package embedding

import (
	"math"
	"testing"
)

func TestCosineSimilarityIdentical(t *testing.T) {
	a := []float32{0.5, 0.25, 0.8}
	sim, err := CosineSimilarity(a, a)
	if err != nil {
		t.Fatalf("CosineSimilarity: %v", err)
	}
	if math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("similarity of vector with itself = %f, want 1", sim)
	}
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	sim, err := CosineSimilarity(a, b)
	if err != nil {
		t.Fatalf("CosineSimilarity: %v", err)
	}
	if math.Abs(sim) > 1e-9 {
		t.Errorf("similarity of orthogonal vectors = %f, want 0", sim)
	}
}

func TestCosineSimilarityOpposite(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{-1, -2, -3}
	sim, err := CosineSimilarity(a, b)
	if err != nil {
		t.Fatalf("CosineSimilarity: %v", err)
	}
	if math.Abs(sim+1.0) > 1e-9 {
		t.Errorf("similarity of opposite vectors = %f, want -1", sim)
	}
}

func TestCosineSimilarityMismatchedLength(t *testing.T) {
	if _, err := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}); err == nil {
		t.Fatal("expected error for mismatched vector lengths")
	}
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	sim, err := CosineSimilarity([]float32{0, 0, 0}, []float32{1, 2, 3})
	if err != nil {
		t.Fatalf("CosineSimilarity: %v", err)
	}
	if sim != 0 {
		t.Errorf("similarity against zero vector = %f, want 0", sim)
	}
}

func TestFindTopK(t *testing.T) {
	query := []float32{1, 0}
	vectors := [][]float32{
		{0, 1},       // orthogonal
		{1, 0},       // identical
		{1, 1},       // 45 degrees
		{-1, 0},      // opposite
		{1, 0, 0, 0}, // wrong dimensions, skipped
	}

	results := FindTopK(query, vectors, 3)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Index != 1 {
		t.Errorf("top result index = %d, want 1 (identical vector)", results[0].Index)
	}
	if results[1].Index != 2 {
		t.Errorf("second result index = %d, want 2", results[1].Index)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Similarity > results[i-1].Similarity {
			t.Errorf("results not sorted descending at %d", i)
		}
	}
}

func TestFindTopKDefaultsK(t *testing.T) {
	query := []float32{1}
	vectors := [][]float32{{1}, {2}, {3}, {4}, {5}, {6}, {7}}

	results := FindTopK(query, vectors, 0)
	if len(results) != 5 {
		t.Errorf("k=0 returned %d results, want default 5", len(results))
	}
}

func TestFindTopKFewerVectorsThanK(t *testing.T) {
	results := FindTopK([]float32{1, 0}, [][]float32{{1, 0}}, 10)
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}

func TestNewEngineUnknownProvider(t *testing.T) {
	if _, err := NewEngine(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewGenAIEngineRequiresKey(t *testing.T) {
	if _, err := NewGenAIEngine("", "gemini-embedding-001", "CLASSIFICATION"); err == nil {
		t.Fatal("expected error when API key is missing")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "genai" {
		t.Errorf("default provider = %q, want genai", cfg.Provider)
	}
	if cfg.GenAIModel == "" {
		t.Error("default model is empty")
	}
}
