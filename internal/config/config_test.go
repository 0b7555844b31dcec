package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing api key fails validation", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("PROMOREEL_CONFIG", "")

		if _, err := Load(); err == nil {
			t.Fatal("expected validation error without an API key")
		}
	})

	t.Run("env fills in over defaults", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("PROMOREEL_CONFIG", "")
		t.Setenv("FLUX_SPACE_URL", "")
		t.Setenv("SCRIPT_MODEL", "")
		t.Setenv("PORT", "9090")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.GeminiAPIKey != "test-key" {
			t.Errorf("GeminiAPIKey = %q", cfg.GeminiAPIKey)
		}
		if cfg.Port != "9090" {
			t.Errorf("Port = %q, want 9090", cfg.Port)
		}
		if cfg.ScriptModel == "" || cfg.FluxSpaceURL == "" {
			t.Error("defaults should survive empty env overrides")
		}
	})

	t.Run("yaml file overrides defaults, env overrides yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		yaml := "gemini_api_key: file-key\nscript_model: gemini-2.0-flash\nport: \"7070\"\n"
		if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}

		t.Setenv("PROMOREEL_CONFIG", path)
		t.Setenv("GEMINI_API_KEY", "env-key")
		t.Setenv("SCRIPT_MODEL", "")
		t.Setenv("PORT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.GeminiAPIKey != "env-key" {
			t.Errorf("GeminiAPIKey = %q, env should win over the file", cfg.GeminiAPIKey)
		}
		if cfg.ScriptModel != "gemini-2.0-flash" {
			t.Errorf("ScriptModel = %q, want the file value", cfg.ScriptModel)
		}
		if cfg.Port != "7070" {
			t.Errorf("Port = %q, want 7070", cfg.Port)
		}
	})
}
