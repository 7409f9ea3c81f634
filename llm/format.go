package llm

import (
	"context"
	"fmt"

	"github.com/shh-cli/shh/internal/types"
)

// stylePrompts holds the system prompt per formatting style. Neutral
// has no prompt: the pipeline delivers neutral transcripts without
// calling the formatter at all, and neutral-with-translation falls
// back to the casual prompt.
var stylePrompts = map[types.Style]string{
	types.StyleCasual: `You are a helpful assistant that formats voice transcriptions in a casual, conversational style.

Your task:
- Automatically detect the language of the input text
- Preserve the original language UNLESS a target language is specified
- Remove filler words (um, uh, like, you know, euh, ben, etc.)
- Fix grammar naturally without being overly formal
- Keep the friendly, conversational tone
- Use contractions where appropriate in the target language
- Keep it readable and natural

If a target language is specified:
- Translate the text to that language while applying the casual style
- Ensure the translation sounds natural in the target language

Do NOT add information that wasn't in the original transcription.
Just clean it up and make it flow naturally.`,

	types.StyleBusiness: `You are a professional editor that formats voice transcriptions for business communication.

Your task:
- Automatically detect the language of the input text
- Preserve the original language UNLESS a target language is specified
- Remove all filler words and false starts
- Use formal, professional language
- Organize into clear paragraphs where appropriate
- Use complete sentences with proper grammar
- Avoid contractions in formal contexts
- Maintain a professional, polished tone

If a target language is specified:
- Translate the text to that language while maintaining business formality
- Use professional terminology appropriate for the target language

Do NOT add information that wasn't in the original transcription.
Focus on clarity and professionalism.`,
}

// Formatter rewrites transcripts in a given style, optionally
// translating them. Every Format call performs one completion; the
// decision to skip formatting for neutral transcripts belongs to the
// caller.
type Formatter struct {
	completer Completer
}

// NewFormatter creates a Formatter on top of a Completer.
func NewFormatter(c Completer) *Formatter {
	return &Formatter{completer: c}
}

// Format rewrites text in the given style. When targetLanguage is
// non-empty the result is also translated into that language.
func (f *Formatter) Format(ctx context.Context, text string, style types.Style, targetLanguage string) (string, types.Usage, error) {
	system, ok := stylePrompts[style]
	if !ok {
		system = stylePrompts[types.StyleCasual]
	}

	user := "Format this transcription: " + text
	if targetLanguage != "" {
		user = fmt.Sprintf("Format this transcription and translate it to %s: %s", targetLanguage, text)
	}

	out, usage, err := f.completer.Complete(ctx, []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return "", usage, fmt.Errorf("format transcription: %w", err)
	}
	return out, usage, nil
}
