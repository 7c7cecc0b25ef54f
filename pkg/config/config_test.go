package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"app": {"name": "wodsmith", "debug": true},
		"providers": {
			"openai": {"api_key": "sk-test", "model": "gpt-4o-mini", "enabled": true},
			"openrouter": {"api_key": "", "model": "", "enabled": false}
		},
		"request": {"text": "heavy lifting day", "injury": "back pain", "goals": ["improve endurance"]}
	}`)

	cfg := LoadConfig(path)

	if !cfg.App.Debug {
		t.Error("debug flag not loaded")
	}

	name, provider := cfg.GetDefaultProvider()
	if name != "openai" || provider.Model != "gpt-4o-mini" {
		t.Errorf("unexpected default provider: %s %+v", name, provider)
	}

	if cfg.Request.Injury != "back pain" || len(cfg.Request.Goals) != 1 {
		t.Errorf("request defaults not loaded: %+v", cfg.Request)
	}
}

func TestLoadConfig_MissingRequestSection(t *testing.T) {
	path := writeConfig(t, `{
		"providers": {"openai": {"api_key": "sk-test", "model": "gpt-4o-mini", "enabled": true}}
	}`)

	cfg := LoadConfig(path)

	// Absent keys default to no injury and no goals.
	if cfg.Request.Injury != "" {
		t.Errorf("expected empty injury, got %q", cfg.Request.Injury)
	}
	if cfg.Request.Goals != nil {
		t.Errorf("expected nil goals, got %v", cfg.Request.Goals)
	}
}

func TestGetTelegramConfig(t *testing.T) {
	path := writeConfig(t, `{
		"gateways": {"telegram": {"token": "tok", "enabled": false}},
		"providers": {"openai": {"api_key": "sk-test", "enabled": true}}
	}`)

	cfg := LoadConfig(path)
	if _, ok := cfg.GetTelegramConfig(); ok {
		t.Error("disabled gateway reported as enabled")
	}
}
