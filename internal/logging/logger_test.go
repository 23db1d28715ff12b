package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func initWorkspace(t *testing.T, configYAML string) string {
	t.Helper()
	ws := t.TempDir()
	if configYAML != "" {
		dir := filepath.Join(ws, ".intentbench")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configYAML), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := Initialize(ws); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(CloseAll)
	return ws
}

func TestInitializeRequiresWorkspace(t *testing.T) {
	if err := Initialize(""); err == nil {
		t.Fatal("expected error for empty workspace")
	}
}

func TestNoConfigMeansSilent(t *testing.T) {
	ws := initWorkspace(t, "")

	if IsDebugMode() {
		t.Error("debug mode on without config")
	}

	// Logging calls are no-ops; no logs directory appears.
	Boot("this should go nowhere")
	Evaluation("neither should this")

	if _, err := os.Stat(filepath.Join(ws, ".intentbench", "logs")); !os.IsNotExist(err) {
		t.Error("logs directory created in silent mode")
	}
}

func TestDebugModeWritesFiles(t *testing.T) {
	ws := initWorkspace(t, "logging:\n  debug_mode: true\n  level: debug\n")

	if !IsDebugMode() {
		t.Fatal("debug mode not enabled from config")
	}

	Evaluation("run started with %d cases", 42)
	EvaluationDebug("case detail")
	CloseAll()

	logsDir := filepath.Join(ws, ".intentbench", "logs")
	entries, err := os.ReadDir(logsDir)
	if err != nil {
		t.Fatalf("read logs dir: %v", err)
	}
	found := false
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			data, err := os.ReadFile(filepath.Join(logsDir, e.Name()))
			if err != nil {
				t.Fatal(err)
			}
			if len(data) > 0 {
				found = true
			}
		}
	}
	if !found {
		t.Error("no non-empty log file written in debug mode")
	}
}

func TestCategoryFiltering(t *testing.T) {
	initWorkspace(t, "logging:\n  debug_mode: true\n  categories:\n    store: false\n")

	if IsCategoryEnabled(CategoryStore) {
		t.Error("disabled category reported enabled")
	}
	if !IsCategoryEnabled(CategoryEvaluation) {
		t.Error("unlisted category reported disabled")
	}
}

func TestTimer(t *testing.T) {
	initWorkspace(t, "")

	timer := StartTimer(CategoryEvaluation, "op")
	time.Sleep(time.Millisecond)
	if elapsed := timer.Stop(); elapsed < time.Millisecond {
		t.Errorf("elapsed = %v, want at least 1ms", elapsed)
	}
}
