// Package config handles application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shh-cli/shh/internal/types"
)

const (
	appName        = "shh"
	configFileName = "config.json"

	// EnvAPIKey overrides the stored API key when set.
	EnvAPIKey = "SHH_OPENAI_API_KEY"
)

// Config represents the application configuration.
type Config struct {
	OpenAIAPIKey          string      `json:"openai_api_key,omitempty"`
	DefaultStyle          types.Style `json:"default_style"`
	DefaultTargetLanguage string      `json:"default_target_language,omitempty"`
	WhisperModel          string      `json:"whisper_model"`
	ChatModel             string      `json:"chat_model"`
	STTProvider           string      `json:"stt_provider"`
	SampleRate            int         `json:"sample_rate"`
	MaxDurationSeconds    int         `json:"max_duration_seconds"`
	ShowProgress          bool        `json:"show_progress"`
	Notify                bool        `json:"notify"`
	HistoryEnabled        bool        `json:"history_enabled"`
}

func defaultConfig() *Config {
	return &Config{
		DefaultStyle:       types.StyleNeutral,
		WhisperModel:       "whisper-1",
		ChatModel:          "gpt-4o-mini",
		STTProvider:        "whisper-api",
		SampleRate:         16000,
		MaxDurationSeconds: 300,
		ShowProgress:       true,
		HistoryEnabled:     true,
	}
}

// Load loads configuration from the config file.
// Returns default config if the file doesn't exist. The
// SHH_OPENAI_API_KEY environment variable overrides the stored key.
func Load() (*Config, error) {
	cfg := defaultConfig()

	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		// Unmarshal over the defaults so absent fields keep them.
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.applyDefaults()
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.OpenAIAPIKey = key
	}

	return cfg, nil
}

// Save persists the configuration to disk.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// The file holds an API key; keep it private.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Path returns the config file location, e.g.
// ~/.config/shh/config.json on Linux.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Dir returns the application config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// HistoryDir returns the directory backing the transcription history
// store.
func HistoryDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

func (c *Config) applyDefaults() {
	def := defaultConfig()
	if c.DefaultStyle == "" {
		c.DefaultStyle = def.DefaultStyle
	}
	if c.WhisperModel == "" {
		c.WhisperModel = def.WhisperModel
	}
	if c.ChatModel == "" {
		c.ChatModel = def.ChatModel
	}
	if c.STTProvider == "" {
		c.STTProvider = def.STTProvider
	}
	if c.SampleRate <= 0 {
		c.SampleRate = def.SampleRate
	}
	if c.MaxDurationSeconds <= 0 {
		c.MaxDurationSeconds = def.MaxDurationSeconds
	}
}
