package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gravitrone/flashcards/cli/internal/cards"
)

// Config holds CLI configuration stored at ~/.flashcards/config.
type Config struct {
	Mode        string `yaml:"mode"`
	Locale      string `yaml:"locale"`
	SubmitDelay string `yaml:"submit_delay,omitempty"`
	VimKeys     bool   `yaml:"vim_keys"`
	LogFile     string `yaml:"log_file,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Mode:        string(cards.ModeGallery),
		Locale:      "fa",
		SubmitDelay: cards.DefaultSubmitDelay.String(),
		LogLevel:    "info",
	}
}

// Dir returns the config directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".flashcards")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Load reads and parses the config file. Missing fields take defaults.
func Load() (*Config, error) {
	path := Path()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load with a fallback to Default when the file is missing.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks mode and delay values.
func (c *Config) Validate() error {
	if _, err := cards.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config mode: %w", err)
	}
	if _, err := c.Delay(); err != nil {
		return err
	}
	return nil
}

// ControllerMode returns the parsed submission mode.
func (c *Config) ControllerMode() cards.Mode {
	m, err := cards.ParseMode(c.Mode)
	if err != nil {
		return cards.ModeGallery
	}
	return m
}

// Delay returns the submission latency. Empty means the default.
func (c *Config) Delay() (time.Duration, error) {
	if c.SubmitDelay == "" {
		return cards.DefaultSubmitDelay, nil
	}
	d, err := time.ParseDuration(c.SubmitDelay)
	if err != nil {
		return 0, fmt.Errorf("config submit_delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config submit_delay: negative duration %s", d)
	}
	return d, nil
}

// LogPath returns the log file path, defaulting next to the config.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(Dir(), "flashcards.log")
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
