// Package config handles configuration loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sealor/ai-copywriter/pkg/generation"
)

// ErrMissingCredential is returned by Validate when no API key is set.
var ErrMissingCredential = errors.New("GROQ_API_KEY is not set")

const (
	EnvAPIKey     = "GROQ_API_KEY"
	EnvBaseURL    = "COPYWRITER_BASE_URL"
	EnvModel      = "COPYWRITER_MODEL"
	EnvHistoryDir = "COPYWRITER_HISTORY_DIR"
)

// Config holds all runtime settings. The API key is never read from or
// written to the YAML file.
type Config struct {
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	HistoryDir  string  `yaml:"history_dir"`
	MaxPrompts  int     `yaml:"max_prompts"`
	Listen      string  `yaml:"listen"`
	LogLevel    string  `yaml:"log_level"`
	Debug       bool    `yaml:"debug"`

	APIKey string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		BaseURL:    generation.DefaultBaseURL,
		Model:      generation.DefaultModel,
		HistoryDir: ".copywriter",
		Listen:     "127.0.0.1:8501",
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	c.APIKey = GetEnv(EnvAPIKey, c.APIKey)
	c.BaseURL = GetEnv(EnvBaseURL, c.BaseURL)
	c.Model = GetEnv(EnvModel, c.Model)
	c.HistoryDir = GetEnv(EnvHistoryDir, c.HistoryDir)
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingCredential
	}
	if c.MaxPrompts < 0 {
		return fmt.Errorf("max_prompts must not be negative, got %d", c.MaxPrompts)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Generation returns the settings for the generation client.
func (c *Config) Generation() generation.Config {
	return generation.Config{
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		Model:       c.Model,
		Temperature: c.Temperature,
		Debug:       c.Debug,
	}
}

// GetEnv returns the value of the environment variable name, or fallback when
// it is unset or empty.
func GetEnv(name, fallback string) string {
	value, ok := os.LookupEnv(name)
	if ok && value != "" {
		return value
	}
	return fallback
}
