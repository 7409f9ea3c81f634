package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shh-cli/shh/internal/types"
)

// recordingCompleter captures the messages it was asked to complete.
type recordingCompleter struct {
	calls    int
	messages []Message
	response string
	err      error
}

func (r *recordingCompleter) Complete(_ context.Context, messages []Message) (string, types.Usage, error) {
	r.calls++
	r.messages = messages
	return r.response, types.Usage{TotalTokens: 42}, r.err
}

func TestFormatBuildsPrompts(t *testing.T) {
	tests := []struct {
		name       string
		style      types.Style
		targetLang string
		wantSystem string
		wantInUser string
	}{
		{
			name:       "casual",
			style:      types.StyleCasual,
			wantSystem: "casual, conversational style",
			wantInUser: "Format this transcription: hello",
		},
		{
			name:       "business",
			style:      types.StyleBusiness,
			wantSystem: "business communication",
			wantInUser: "Format this transcription: hello",
		},
		{
			name:       "casual with translation",
			style:      types.StyleCasual,
			targetLang: "English",
			wantInUser: "translate it to English: hello",
		},
		{
			// Neutral plus translation still needs a completion; the
			// casual prompt is the fallback.
			name:       "neutral with translation",
			style:      types.StyleNeutral,
			targetLang: "French",
			wantSystem: "casual, conversational style",
			wantInUser: "translate it to French: hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &recordingCompleter{response: "formatted"}
			f := NewFormatter(c)

			got, usage, err := f.Format(context.Background(), "hello", tt.style, tt.targetLang)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != "formatted" {
				t.Fatalf("text = %q", got)
			}
			if usage.TotalTokens != 42 {
				t.Fatalf("usage = %+v", usage)
			}
			if c.calls != 1 {
				t.Fatalf("completer called %d times", c.calls)
			}
			if len(c.messages) != 2 {
				t.Fatalf("got %d messages, want 2", len(c.messages))
			}
			if tt.wantSystem != "" && !strings.Contains(c.messages[0].Content, tt.wantSystem) {
				t.Fatalf("system prompt %q lacks %q", c.messages[0].Content, tt.wantSystem)
			}
			if !strings.Contains(c.messages[1].Content, tt.wantInUser) {
				t.Fatalf("user prompt %q lacks %q", c.messages[1].Content, tt.wantInUser)
			}
		})
	}
}

func TestFormatPropagatesCompleterError(t *testing.T) {
	wantErr := errors.New("rate limited")
	f := NewFormatter(&recordingCompleter{err: wantErr})

	_, _, err := f.Format(context.Background(), "hello", types.StyleBusiness, "")
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want wrapped %v", err, wantErr)
	}
}
