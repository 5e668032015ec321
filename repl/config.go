package repl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultPrompt is the prompt used when a Config does not specify one.
const DefaultPrompt = "user> "

// Config controls the behavior of a REPL session.
type Config struct {
	// Prompt is displayed when the REPL is waiting for a new form.
	Prompt string `toml:"prompt" yaml:"prompt"`

	// ContinuationPrompt is displayed while an incomplete form is buffered.
	// When empty, a run of spaces as wide as Prompt is used.
	ContinuationPrompt string `toml:"continuation_prompt" yaml:"continuation_prompt"`

	// HistoryFile is where line history is persisted.  History is kept in
	// memory only when empty.
	HistoryFile string `toml:"history_file" yaml:"history_file"`

	// HistoryLimit is the maximum number of history entries.
	HistoryLimit int `toml:"history_limit" yaml:"history_limit"`

	// Multiline makes the REPL buffer lines which end inside an unfinished
	// form and join them with the following line.
	Multiline bool `toml:"multiline" yaml:"multiline"`

	// Color enables styled error output.
	Color bool `toml:"color" yaml:"color"`
}

// DefaultConfig returns the configuration used when no configuration file is
// given.
func DefaultConfig() *Config {
	return &Config{
		Prompt:       DefaultPrompt,
		HistoryLimit: 500,
	}
}

// LoadConfig reads a configuration file.  Files with a .yaml or .yml
// extension are decoded as YAML, anything else as TOML.  Settings missing
// from the file keep their default values.  An empty path returns the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	path = os.ExpandEnv(path)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		_, err = toml.Decode(string(b), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	cfg.HistoryFile = os.ExpandEnv(cfg.HistoryFile)
	return cfg, nil
}

func (cfg *Config) continuationPrompt() string {
	if cfg.ContinuationPrompt != "" {
		return cfg.ContinuationPrompt
	}
	return strings.Repeat(" ", len(cfg.Prompt)) // prompt had better be ascii...
}
