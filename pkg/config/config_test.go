package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalConfig = `environment: test
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.Logging.Level)
	}
	if cfg.NLP.MinTokenLength != 1 || cfg.NLP.MaxTokenLength != 30 {
		t.Fatalf("unexpected token length defaults: %d..%d", cfg.NLP.MinTokenLength, cfg.NLP.MaxTokenLength)
	}
	if cfg.NLP.MinConfidence != 0.3 {
		t.Fatalf("expected default min confidence 0.3, got %v", cfg.NLP.MinConfidence)
	}
	if cfg.NLP.MaxProcessingTime != 5*time.Second {
		t.Fatalf("expected default processing time 5s, got %v", cfg.NLP.MaxProcessingTime)
	}
	if cfg.Cache.PatternTTL != 5*time.Minute || cfg.Cache.KnowledgeTTL != 10*time.Minute {
		t.Fatalf("unexpected cache TTL defaults: %v / %v", cfg.Cache.PatternTTL, cfg.Cache.KnowledgeTTL)
	}
	if cfg.Cache.MaxEntries != 512 {
		t.Fatalf("expected default max entries 512, got %d", cfg.Cache.MaxEntries)
	}
}

func TestLoadExplicitValuesWin(t *testing.T) {
	cfg, err := Load(writeConfig(t, `environment: production
server:
  port: 9090
logging:
  level: debug
  format: json
nlp:
  min_confidence: 0.5
  max_suggestions: 3
cache:
  max_entries: 64
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config: %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.NLP.MinConfidence != 0.5 || cfg.NLP.MaxSuggestions != 3 {
		t.Fatalf("unexpected nlp config: %v/%d", cfg.NLP.MinConfidence, cfg.NLP.MaxSuggestions)
	}
	if cfg.Cache.MaxEntries != 64 {
		t.Fatalf("expected max entries 64, got %d", cfg.Cache.MaxEntries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "environment: [unterminated")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing environment", "server:\n  port: 8080\n"},
		{"port out of range", "environment: test\nserver:\n  port: 99999\n"},
		{"confidence out of range", "environment: test\nnlp:\n  min_confidence: 1.5\n"},
		{"token length order", "environment: test\nnlp:\n  min_token_length: 40\n  max_token_length: 20\n"},
		{"redis without addr", "environment: test\ncache:\n  redis:\n    enabled: true\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.yaml)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_PASSWORD", "hunter2")
	t.Setenv("CACHE_MAX_ENTRIES", "128")

	cfg, err := LoadWithEnv(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Fatalf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env log level warn, got %s", cfg.Logging.Level)
	}
	if !cfg.Cache.Redis.Enabled || cfg.Cache.Redis.Addr != "redis:6379" {
		t.Fatalf("expected redis enabled at redis:6379, got %+v", cfg.Cache.Redis)
	}
	if cfg.Cache.Redis.Password != "hunter2" {
		t.Fatalf("unexpected redis password %q", cfg.Cache.Redis.Password)
	}
	if cfg.Cache.MaxEntries != 128 {
		t.Fatalf("expected env max entries 128, got %d", cfg.Cache.MaxEntries)
	}
}

func TestLoadWithEnvIgnoresBadValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := LoadWithEnv(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port kept, got %d", cfg.Server.Port)
	}
}
