// Package cli implements the shh command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shh",
	Short: "Voice transcription CLI powered by OpenAI Whisper",
	Long: `Record audio, transcribe with Whisper, and optionally format or
translate the output. The result is printed and copied to the clipboard.

Examples:
  shh                         Record and transcribe (press Enter to stop)
  shh --style business        Transcribe with professional formatting
  shh --translate English     Transcribe and translate to English
  shh setup                   Configure your OpenAI API key
  shh config show             View current configuration
  shh history                 List recent transcriptions`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRecord,
}

func init() {
	rootCmd.Flags().StringP("style", "s", "", "formatting style: neutral, casual or business")
	rootCmd.Flags().StringP("translate", "t", "", "translate to target language (e.g. English, French)")
	rootCmd.Flags().Int("max-duration", 0, "recording cap in seconds (default 300)")
	rootCmd.Flags().Bool("no-clipboard", false, "do not copy the result to the clipboard")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(setupCmd, configCmd, historyCmd)
}

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var xerr *exitError
		if errors.As(err, &xerr) {
			if xerr.msg != "" {
				fmt.Fprintln(os.Stderr, "shh: "+xerr.msg)
			}
			return xerr.code
		}
		fmt.Fprintln(os.Stderr, "shh: "+err.Error())
		return 1
	}
	return 0
}
