package config

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sealor/ai-copywriter/pkg/generation"
)

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.Model != generation.DefaultModel {
		t.Errorf("Model = %q, want default %q", cfg.Model, generation.DefaultModel)
	}
	if cfg.HistoryDir == "" {
		t.Error("HistoryDir default is empty")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "model: llama-3.1-8b-instant\nmax_prompts: 50\nhistory_dir: /tmp/hist\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Model != "llama-3.1-8b-instant" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.MaxPrompts != 50 {
		t.Errorf("MaxPrompts = %d, want 50", cfg.MaxPrompts)
	}
	if cfg.BaseURL != generation.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default kept", cfg.BaseURL)
	}
}

func TestLoadIgnoresAPIKeyInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("apikey: secret\nAPIKey: secret\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want it never loaded from file", cfg.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "gsk_env")
	t.Setenv(EnvModel, "env-model")
	t.Setenv(EnvBaseURL, "")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.APIKey != "gsk_env" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Model != "env-model" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.BaseURL != generation.DefaultBaseURL {
		t.Errorf("empty env var replaced BaseURL with %q", cfg.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); !errors.Is(err, ErrMissingCredential) {
		t.Errorf("Validate() without key = %v, want ErrMissingCredential", err)
	}

	cfg.APIKey = "gsk_x"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted an unknown log level")
	}

	cfg.LogLevel = "info"
	cfg.MaxPrompts = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted negative max_prompts")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{" DEBUG ", slog.LevelDebug, false},
		{"trace", LevelTrace, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewLoggerTraceName(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelTrace)
	logger.Log(context.Background(), LevelTrace, "payload")

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("log output = %q, want level=TRACE", buf.String())
	}
}
