package pipeline

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTaskOverrides(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "prompts_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "stages.yaml")
	content := "intent: Custom intent task\noptimizer: Custom optimizer task\nunknown_stage: ignored\n"
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	contracts, err := LoadTaskOverrides(path, DefaultContracts())
	if err != nil {
		t.Fatal(err)
	}

	if contracts.Intent.Task != "Custom intent task" {
		t.Errorf("intent task not overridden: %q", contracts.Intent.Task)
	}
	if contracts.Optimizer.Task != "Custom optimizer task" {
		t.Errorf("optimizer task not overridden: %q", contracts.Optimizer.Task)
	}
	if contracts.Architect.Task != DefaultContracts().Architect.Task {
		t.Errorf("architect task should be untouched: %q", contracts.Architect.Task)
	}
	// Field layouts are never overridden.
	if len(contracts.Intent.Inputs) != 1 || contracts.Intent.Inputs[0].Name != "raw_request" {
		t.Error("override changed contract fields")
	}
}

func TestLoadTaskOverrides_MissingFile(t *testing.T) {
	contracts, err := LoadTaskOverrides("does-not-exist.yaml", DefaultContracts())
	if err == nil {
		t.Fatal("expected an error for a missing overrides file")
	}
	if contracts.Intent.Task != DefaultContracts().Intent.Task {
		t.Error("contracts changed despite the error")
	}
}
