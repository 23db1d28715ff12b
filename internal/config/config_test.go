package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, ws, content string) {
	t.Helper()
	dir := filepath.Join(ws, ".intentbench")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	ws := t.TempDir()

	cfg, err := Load(ws)
	require.NoError(t, err)

	assert.Equal(t, "keyword", cfg.Classifier.Provider)
	assert.Equal(t, 1, cfg.Evaluation.Workers)
	assert.Equal(t, filepath.Join(ws, ".intentbench", "history.db"), cfg.History.Path)
	assert.False(t, cfg.History.Disabled)
}

func TestLoadFromFile(t *testing.T) {
	ws := t.TempDir()
	writeConfig(t, ws, `
classifier:
  provider: semantic
  top_k: 7
evaluation:
  case_timeout: 2s
  workers: 4
history:
  disabled: true
`)

	cfg, err := Load(ws)
	require.NoError(t, err)

	assert.Equal(t, "semantic", cfg.Classifier.Provider)
	assert.Equal(t, 7, cfg.Classifier.TopK)
	assert.Equal(t, 4, cfg.Evaluation.Workers)
	assert.Equal(t, 2*time.Second, cfg.CaseTimeout())
	assert.True(t, cfg.History.Disabled)
}

func TestLoadMalformedFile(t *testing.T) {
	ws := t.TempDir()
	writeConfig(t, ws, "classifier: [not a map")

	_, err := Load(ws)
	assert.Error(t, err)
}

func TestLoadEnvOverridesAPIKey(t *testing.T) {
	t.Setenv("INTENTBENCH_GENAI_KEY", "test-key-from-env")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "test-key-from-env", cfg.Classifier.Embedding.GenAIAPIKey)
}

func TestCaseTimeoutFallback(t *testing.T) {
	cfg := Default()

	cfg.Evaluation.CaseTimeout = "not-a-duration"
	assert.Equal(t, 10*time.Second, cfg.CaseTimeout())

	cfg.Evaluation.CaseTimeout = "-5s"
	assert.Equal(t, 10*time.Second, cfg.CaseTimeout())
}
