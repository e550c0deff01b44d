package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the chat client settings. Values come from the TOML
// config file, with command-line flags taking precedence.
type Config struct {
	BaseURL        string  `toml:"base_url"`
	Model          string  `toml:"model"`
	Temperature    float64 `toml:"temperature"`
	MaxTokens      int     `toml:"max_tokens"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	SystemPrompt   string  `toml:"system_prompt"`
}

const defaultSystemPrompt = `You are a coding assistant running inside a terminal chat client.
You can suggest shell tool commands by putting them on their own line
in single backticks, e.g. ` + "`grep pattern`" + `. Available tools:
glob <pattern>, grep <query>, read <file>, ls. Suggested commands are
executed locally and their output is added to the conversation.`

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://localhost:11434",
		Model:          "gpt-oss:20b",
		Temperature:    0.7,
		MaxTokens:      1000,
		TimeoutSeconds: 60,
		SystemPrompt:   defaultSystemPrompt,
	}
}

// DefaultConfigPath returns the conventional config file location,
// e.g. ~/.config/cellflex/config.toml.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cellflex", "config.toml")
}

// LoadConfig reads path on top of the defaults. A missing file is not
// an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultConfig().TimeoutSeconds
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	return cfg, nil
}
