// Command chat is a terminal chat client for a local model server.
// The frame layout is computed by the cellflex engine; rendering and
// input are handled by bubbletea.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() error {
	var (
		configPath string
		baseURL    string
		model      string
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "chat",
		Short:        "Terminal chat client for a local model server",
		Long:         "chat talks to an Ollama-compatible server and renders the conversation in a flexbox-layouted terminal frame. Assistant replies may suggest shell tools in backticks; allowed ones run locally.",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}
			if model != "" {
				cfg.Model = model
			}

			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger, closeLog, err := newLogger(level)
			if err != nil {
				return err
			}
			defer closeLog()
			logger.Info("starting", "model", cfg.Model, "url", cfg.BaseURL)

			m := newChatModel(cfg, NewClient(cfg), logger)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	root.Flags().StringVar(&configPath, "config", DefaultConfigPath(), "config file path")
	root.Flags().StringVar(&baseURL, "url", "", "model server base URL (overrides config)")
	root.Flags().StringVar(&model, "model", "", "model name (overrides config)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return root.Execute()
}

// newLogger writes timestamped logs to a file in the user cache dir;
// the terminal itself belongs to the TUI.
func newLogger(level log.Level) (*log.Logger, func(), error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return log.New(io.Discard), func() {}, nil
	}
	path := filepath.Join(dir, "cellflex")
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(path, "chat.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
