package stt

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultWhisperModel = "whisper-1"

// WhisperAPI implements the Provider interface using OpenAI's Whisper API.
type WhisperAPI struct {
	client openai.Client
	model  string
}

// WhisperAPIConfig holds configuration for WhisperAPI.
type WhisperAPIConfig struct {
	APIKey  string
	BaseURL string // Optional, defaults to OpenAI's API
	Model   string // Optional, defaults to "whisper-1"
}

// NewWhisperAPI creates a new WhisperAPI provider.
func NewWhisperAPI(cfg WhisperAPIConfig) *WhisperAPI {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = defaultWhisperModel
	}

	return &WhisperAPI{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Name returns the provider identifier.
func (w *WhisperAPI) Name() string { return "whisper-api" }

// Model returns the configured transcription model.
func (w *WhisperAPI) Model() string { return w.model }

// Transcribe uploads the WAV file to the transcription endpoint and
// returns the recognized text.
func (w *WhisperAPI) Transcribe(ctx context.Context, wavPath string) (string, error) {
	f, err := os.Open(wavPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	resp, err := w.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  f,
		Model: openai.AudioModel(w.model),
	})
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}

// Close releases resources held by the provider.
func (w *WhisperAPI) Close() error { return nil }
