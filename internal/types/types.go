// Package types provides shared type definitions for the application.
package types

import "fmt"

// Style selects how a transcript is rewritten after transcription.
type Style string

const (
	// StyleNeutral leaves the transcript exactly as Whisper returned it.
	StyleNeutral Style = "neutral"
	// StyleCasual cleans the transcript up in a conversational tone.
	StyleCasual Style = "casual"
	// StyleBusiness rewrites the transcript in formal, professional language.
	StyleBusiness Style = "business"
)

// Styles lists every valid style, in display order.
func Styles() []Style {
	return []Style{StyleNeutral, StyleCasual, StyleBusiness}
}

// ParseStyle validates a user-supplied style name.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleNeutral, StyleCasual, StyleBusiness:
		return Style(s), nil
	}
	return "", fmt.Errorf("unknown style %q (want neutral, casual or business)", s)
}

// Usage represents token usage statistics from LLM API calls.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// Add accumulates usage from another call.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}
