package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Passes == nil {
		t.Error("passes map should be initialized")
	}
	if cfg.Thresholds.MaxFunctionLines != 0 {
		t.Error("empty config should leave thresholds at zero (scanner defaults apply)")
	}
}

func TestLoadConfigFile(t *testing.T) {
	content := `
passes:
  deep_nesting:
    disabled: true
thresholds:
  max_function_lines: 30
  max_nesting_depth: 3
llm:
  base_url: http://localhost:8080/v1
  model: local-model
  api_key_env: MY_KEY
  timeout_seconds: 10
`
	path := filepath.Join(t.TempDir(), "pyscribe.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if !cfg.Passes["deep_nesting"].Disabled {
		t.Error("deep_nesting should be disabled")
	}
	if cfg.Thresholds.MaxFunctionLines != 30 || cfg.Thresholds.MaxNestingDepth != 3 {
		t.Errorf("thresholds = %+v", cfg.Thresholds)
	}
	if cfg.LLM.Model != "local-model" || cfg.LLM.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("passes: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestAPIKey(t *testing.T) {
	t.Run("named env var", func(t *testing.T) {
		t.Setenv("MY_KEY", "abc")
		cfg := &Config{LLM: LLMConfig{APIKeyEnv: "MY_KEY"}}
		if got := cfg.APIKey(); got != "abc" {
			t.Errorf("APIKey() = %q", got)
		}
	})

	t.Run("tool var wins over openai var", func(t *testing.T) {
		t.Setenv("PYSCRIBE_API_KEY", "tool")
		t.Setenv("OPENAI_API_KEY", "openai")
		cfg := &Config{}
		if got := cfg.APIKey(); got != "tool" {
			t.Errorf("APIKey() = %q", got)
		}
	})

	t.Run("openai fallback", func(t *testing.T) {
		t.Setenv("PYSCRIBE_API_KEY", "")
		t.Setenv("OPENAI_API_KEY", "openai")
		cfg := &Config{}
		if got := cfg.APIKey(); got != "openai" {
			t.Errorf("APIKey() = %q", got)
		}
	})
}
