// Package clipboard copies transcription results to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Copy writes text to the system clipboard. Callers treat failure as
// best-effort: the transcript is still surfaced on stdout.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
