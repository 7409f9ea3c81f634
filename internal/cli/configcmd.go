package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shh-cli/shh/config"
	"github.com/shh-cli/shh/internal/app"
	"github.com/shh-cli/shh/internal/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration settings",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return &exitError{code: app.ExitConfig, msg: err.Error()}
		}

		key := "(not set)"
		if cfg.OpenAIAPIKey != "" {
			key = maskKey(cfg.OpenAIAPIKey)
		}

		fmt.Printf("%-25s %s\n", "openai_api_key", key)
		fmt.Printf("%-25s %s\n", "default_style", cfg.DefaultStyle)
		fmt.Printf("%-25s %s\n", "default_target_language", orUnset(cfg.DefaultTargetLanguage))
		fmt.Printf("%-25s %s\n", "whisper_model", cfg.WhisperModel)
		fmt.Printf("%-25s %s\n", "chat_model", cfg.ChatModel)
		fmt.Printf("%-25s %s\n", "stt_provider", cfg.STTProvider)
		fmt.Printf("%-25s %d\n", "sample_rate", cfg.SampleRate)
		fmt.Printf("%-25s %d\n", "max_duration_seconds", cfg.MaxDurationSeconds)
		fmt.Printf("%-25s %t\n", "show_progress", cfg.ShowProgress)
		fmt.Printf("%-25s %t\n", "notify", cfg.Notify)
		fmt.Printf("%-25s %t\n", "history_enabled", cfg.HistoryEnabled)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update one configuration setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return &exitError{code: app.ExitConfig, msg: err.Error()}
		}

		if err := applySetting(cfg, args[0], args[1]); err != nil {
			return &exitError{code: app.ExitConfig, msg: err.Error()}
		}
		if err := cfg.Save(); err != nil {
			return &exitError{code: app.ExitConfig, msg: err.Error()}
		}

		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

func applySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "default_style":
		style, err := types.ParseStyle(value)
		if err != nil {
			return err
		}
		cfg.DefaultStyle = style
	case "default_target_language":
		cfg.DefaultTargetLanguage = value
	case "whisper_model":
		cfg.WhisperModel = value
	case "chat_model":
		cfg.ChatModel = value
	case "stt_provider":
		cfg.STTProvider = value
	case "sample_rate":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("sample_rate must be a positive integer")
		}
		cfg.SampleRate = n
	case "max_duration_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("max_duration_seconds must be a positive integer")
		}
		cfg.MaxDurationSeconds = n
	case "show_progress", "notify", "history_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
		switch key {
		case "show_progress":
			cfg.ShowProgress = b
		case "notify":
			cfg.Notify = b
		case "history_enabled":
			cfg.HistoryEnabled = b
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
