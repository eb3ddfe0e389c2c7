// Package config loads REPL/CLI cosmetics from an optional
// monkey.toml file. It never touches language behavior — the grammar
// and evaluator have no notion of a runtime flag.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds everything monkey.toml is allowed to change.
type Config struct {
	Prompt      string `toml:"prompt"`
	ContPrompt  string `toml:"cont_prompt"`
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
}

// Default returns the configuration used when no monkey.toml is found.
func Default() *Config {
	return &Config{
		Prompt:      "monkey» ",
		ContPrompt:  "......» ",
		HistoryFile: ".monkey_history",
		Color:       true,
	}
}

// Load looks for monkey.toml in the current directory, then in the
// user's home directory, and merges whatever it finds over Default().
// A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()

	candidates := []string{"monkey.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "monkey.toml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, nil
}
