package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shh-cli/shh/config"
	"github.com/shh-cli/shh/internal/app"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure OpenAI API key and settings",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println("shh setup")
		fmt.Println("Let's configure your OpenAI API key.")
		fmt.Println()

		key, err := readAPIKey()
		if err != nil {
			return &exitError{code: app.ExitConfig, msg: "read API key: " + err.Error()}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return &exitError{code: app.ExitConfig, msg: "API key cannot be empty"}
		}

		cfg, err := config.Load()
		if err != nil {
			return &exitError{code: app.ExitConfig, msg: err.Error()}
		}
		cfg.OpenAIAPIKey = key
		if err := cfg.Save(); err != nil {
			return &exitError{code: app.ExitConfig, msg: err.Error()}
		}

		path, _ := config.Path()
		fmt.Println("Configuration saved.")
		fmt.Println()
		fmt.Printf("  Config file:    %s\n", path)
		fmt.Printf("  OpenAI API key: %s\n", maskKey(key))
		fmt.Printf("  Default style:  %s\n", cfg.DefaultStyle)
		fmt.Printf("  Whisper model:  %s\n", cfg.WhisperModel)
		fmt.Println()
		fmt.Println("You can now run 'shh' to start recording.")
		return nil
	},
}

// readAPIKey reads the key without echo when stdin is a terminal.
func readAPIKey() (string, error) {
	fmt.Print("Enter your OpenAI API key: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		defer fmt.Println()
		key, err := term.ReadPassword(fd)
		return string(key), err
	}

	var key string
	_, err := fmt.Fscanln(os.Stdin, &key)
	return key, err
}

// maskKey keeps only the key's last four characters visible.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "sk-***" + key[len(key)-4:]
}
