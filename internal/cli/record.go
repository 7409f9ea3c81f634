package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/spf13/cobra"

	"github.com/shh-cli/shh/audiocapture"
	"github.com/shh-cli/shh/clipboard"
	"github.com/shh-cli/shh/config"
	"github.com/shh-cli/shh/history"
	"github.com/shh-cli/shh/internal/app"
	"github.com/shh-cli/shh/internal/types"
	"github.com/shh-cli/shh/langdetect"
	"github.com/shh-cli/shh/llm"
	"github.com/shh-cli/shh/stt"
	"github.com/shh-cli/shh/wavfile"
)

func runRecord(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return &exitError{code: app.ExitConfig, msg: err.Error()}
	}
	if cfg.OpenAIAPIKey == "" {
		return &exitError{
			code: app.ExitConfig,
			msg:  "no API key found. Run 'shh setup' to configure your OpenAI API key",
		}
	}

	style := cfg.DefaultStyle
	if s, _ := cmd.Flags().GetString("style"); s != "" {
		style, err = types.ParseStyle(s)
		if err != nil {
			return &exitError{code: app.ExitConfig, msg: err.Error()}
		}
	}

	targetLanguage := cfg.DefaultTargetLanguage
	if tl, _ := cmd.Flags().GetString("translate"); tl != "" {
		targetLanguage = tl
	}
	targetLanguage = langdetect.CanonicalTarget(targetLanguage)

	maxDuration := time.Duration(cfg.MaxDurationSeconds) * time.Second
	if secs, _ := cmd.Flags().GetInt("max-duration"); secs > 0 {
		maxDuration = time.Duration(secs) * time.Second
	}

	registry := stt.NewRegistry()
	registry.Register(stt.NewWhisperAPI(stt.WhisperAPIConfig{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.WhisperModel,
	}))
	defer registry.Close()

	provider := registry.Get(cfg.STTProvider)
	if provider == nil {
		return &exitError{
			code: app.ExitConfig,
			msg:  fmt.Sprintf("unknown stt provider %q", cfg.STTProvider),
		}
	}

	pipeline := &app.Pipeline{
		OpenSession: func(c audiocapture.Config) (app.Session, error) {
			return audiocapture.Open(c)
		},
		Encode:      wavfile.Write,
		Transcriber: provider,
		Formatter: llm.NewFormatter(llm.NewCompleter(llm.CompleterConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.ChatModel,
		})),
		Detector:    langdetect.New(),
		StopInput:   os.Stdin,
		SampleRate:  cfg.SampleRate,
		MaxDuration: maxDuration,
	}

	if noClip, _ := cmd.Flags().GetBool("no-clipboard"); !noClip {
		pipeline.Copy = clipboard.Copy
	}

	var store *history.Store
	if cfg.HistoryEnabled {
		dir, err := config.HistoryDir()
		if err == nil {
			store, err = history.Open(dir)
		}
		if err != nil {
			slog.Warn("history store unavailable", "error", err)
		} else {
			defer store.Close()
			pipeline.History = store
		}
	}

	if cfg.ShowProgress {
		fmt.Fprintln(os.Stderr)
		pipeline.Progress = renderProgress
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	outcome := pipeline.Run(ctx, style, targetLanguage)

	if cfg.ShowProgress {
		clearProgress()
	}
	if outcome.Stop == app.StopTimeout {
		fmt.Fprintf(os.Stderr, "Maximum recording duration reached (%s)\n", maxDuration)
	}

	if outcome.Err != nil {
		if outcome.Err.Kind == app.KindInterrupted {
			return &exitError{code: app.ExitInterrupted, msg: "recording cancelled"}
		}
		return &exitError{code: outcome.ExitCode(), msg: outcome.Err.Error()}
	}

	printOutcome(outcome)

	if cfg.Notify {
		if err := beeep.Notify("shh", "Transcription ready", ""); err != nil {
			slog.Debug("notification failed", "error", err)
		}
	}

	return nil
}

// renderProgress rewrites a single status line on stderr.
func renderProgress(elapsed, max time.Duration) {
	fmt.Fprintf(os.Stderr, "\rRecording... %.1fs / %.0fs  [press Enter to stop]",
		elapsed.Seconds(), max.Seconds())
}

func clearProgress() {
	fmt.Fprint(os.Stderr, "\r\033[K")
}

func printOutcome(o app.Outcome) {
	status := ""
	switch {
	case o.Copied:
		status = " (copied to clipboard)"
	case o.ClipboardErr != nil:
		fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", o.ClipboardErr)
	}

	header := "Transcription" + status
	if o.DetectedLanguage != "" {
		header += " [" + o.DetectedLanguage + "]"
	}
	fmt.Fprintln(os.Stderr, header+":")
	fmt.Println(o.Text)
}
