// Package llm provides chat-completion clients and transcript formatting.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/shh-cli/shh/internal/types"
)

const (
	// DefaultChatModel is used for formatting when the config does not
	// name one.
	DefaultChatModel = "gpt-4o-mini"

	defaultMaxTokens   = 1000
	defaultTemperature = 0.3
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer performs chat completions.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, types.Usage, error)
}

// CompleterConfig holds parameters for the OpenAI completer.
type CompleterConfig struct {
	APIKey      string
	BaseURL     string  // Optional, defaults to OpenAI's API
	Model       string  // Optional, defaults to DefaultChatModel
	MaxTokens   int     // Optional
	Temperature float64 // Optional
}

// NewCompleter creates a Completer backed by the OpenAI chat API.
func NewCompleter(cfg CompleterConfig) Completer {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	if cfg.Model == "" {
		cfg.Model = DefaultChatModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}

	return &openaiCompleter{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// openaiCompleter implements Completer on the OpenAI chat API.
type openaiCompleter struct {
	client      openai.Client
	model       string
	maxTokens   int
	temperature float64
}

func (c *openaiCompleter) Complete(ctx context.Context, messages []Message) (string, types.Usage, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case "assistant":
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    msgs,
		MaxTokens:   openai.Int(int64(c.maxTokens)),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", types.Usage{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", types.Usage{}, fmt.Errorf("chat completion: no choices")
	}

	usage := types.Usage{
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
		TotalTokens:      int(resp.Usage.TotalTokens),
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), usage, nil
}
