package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shh-cli/shh/config"
	"github.com/shh-cli/shh/history"
	"github.com/shh-cli/shh/internal/app"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent transcriptions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		n, _ := cmd.Flags().GetInt("limit")

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(n)
		if err != nil {
			return &exitError{code: 1, msg: err.Error()}
		}
		if len(entries) == 0 {
			fmt.Println("No transcriptions recorded yet.")
			return nil
		}

		for _, e := range entries {
			meta := string(e.Style)
			if e.TargetLanguage != "" {
				meta += " -> " + e.TargetLanguage
			}
			if e.DetectedLanguage != "" {
				meta += ", " + e.DetectedLanguage
			}
			fmt.Printf("%s  (%s, %.1fs)\n", e.CreatedAt.Format("2006-01-02 15:04"), meta, e.DurationSeconds)
			fmt.Printf("  %s\n", snippet(e.Text, 100))
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded transcriptions",
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			return &exitError{code: 1, msg: err.Error()}
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func openHistory() (*history.Store, error) {
	dir, err := config.HistoryDir()
	if err != nil {
		return nil, &exitError{code: app.ExitConfig, msg: err.Error()}
	}
	store, err := history.Open(dir)
	if err != nil {
		return nil, &exitError{code: 1, msg: err.Error()}
	}
	return store, nil
}

func snippet(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of entries to show")
	historyCmd.AddCommand(historyClearCmd)
}
