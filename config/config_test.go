package config

import (
	"runtime"
	"testing"

	"github.com/shh-cli/shh/internal/types"
)

func setConfigHome(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("test relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIKey, "")
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	setConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DefaultStyle != types.StyleNeutral {
		t.Fatalf("style = %q", cfg.DefaultStyle)
	}
	if cfg.SampleRate != 16000 {
		t.Fatalf("sample rate = %d", cfg.SampleRate)
	}
	if cfg.MaxDurationSeconds != 300 {
		t.Fatalf("max duration = %d", cfg.MaxDurationSeconds)
	}
	if !cfg.ShowProgress {
		t.Fatal("ShowProgress should default to true")
	}
	if !cfg.HistoryEnabled {
		t.Fatal("HistoryEnabled should default to true")
	}
	if cfg.OpenAIAPIKey != "" {
		t.Fatalf("unexpected API key %q", cfg.OpenAIAPIKey)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.OpenAIAPIKey = "sk-test-1234"
	cfg.DefaultStyle = types.StyleBusiness
	cfg.DefaultTargetLanguage = "English"
	cfg.ShowProgress = false

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}

	if got.OpenAIAPIKey != "sk-test-1234" {
		t.Fatalf("api key = %q", got.OpenAIAPIKey)
	}
	if got.DefaultStyle != types.StyleBusiness {
		t.Fatalf("style = %q", got.DefaultStyle)
	}
	if got.DefaultTargetLanguage != "English" {
		t.Fatalf("target language = %q", got.DefaultTargetLanguage)
	}
	if got.ShowProgress {
		t.Fatal("explicit ShowProgress=false not preserved")
	}
	// Absent fields keep their defaults.
	if got.SampleRate != 16000 {
		t.Fatalf("sample rate = %d", got.SampleRate)
	}
}

func TestEnvOverridesStoredKey(t *testing.T) {
	setConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.OpenAIAPIKey = "sk-from-file"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv(EnvAPIKey, "sk-from-env")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.OpenAIAPIKey != "sk-from-env" {
		t.Fatalf("api key = %q, want env override", got.OpenAIAPIKey)
	}
}
