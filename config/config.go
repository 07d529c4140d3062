// Package config loads the REPL settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPrompt is shown before each line when none is configured.
const DefaultPrompt = "user> "

// Config holds the REPL settings.
type Config struct {
	Path string `yaml:"-"`

	// Prompt is written before reading each interactive line.
	Prompt string `yaml:"prompt"`

	// History is the file line history is loaded from and saved to. Empty
	// disables history.
	History string `yaml:"history"`

	// Debug enables evaluation traces.
	Debug bool `yaml:"debug"`
}

// Default returns the settings used when there is no config file.
func Default() *Config {
	return &Config{
		Prompt: DefaultPrompt,
	}
}

// Load reads a YAML config file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	cfg.Path = abs
	return cfg, nil
}

// Parse decodes YAML settings on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.History = strings.TrimSpace(c.History)
	if strings.HasPrefix(c.History, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			c.History = filepath.Join(home, c.History[2:])
		}
	}
}
