// Package langdetect identifies the language of transcribed text.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// detectionLanguages is the closed set the detector chooses from.
// A smaller set keeps detection accurate on short transcripts.
var detectionLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Japanese,
	lingua.Korean,
	lingua.Chinese,
	lingua.Arabic,
}

// Detector wraps a lingua language detector.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a Detector. Building loads language models; reuse one
// Detector per process.
func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(detectionLanguages...).
			Build(),
	}
}

// Detect returns the English display name of the detected language
// ("French") and whether detection was confident enough to report.
func (d *Detector) Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return lang.String(), true
}

// CanonicalTarget normalizes a user-supplied target language so "en",
// "fr" and "french" all become display names the formatter prompt can
// embed. Unrecognized input is passed through title-cased.
func CanonicalTarget(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if tag, err := language.Parse(s); err == nil {
		if name := display.English.Tags().Name(tag); name != "" {
			return name
		}
	}
	return cases.Title(language.English).String(s)
}
