// SPDX-License-Identifier: MIT

// Package config loads the run configuration of the patterns CLI from YAML
// or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patterns/internal/logger"
)

// Sentinel errors returned by Load and Validate.
var (
	// ErrUnsupportedFormat indicates a config file extension other than .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalidConfig indicates a decoded config that failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Themes accepted by the abstract factory demo.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds the settings of one CLI run.
type Config struct {
	// Patterns lists demos to run, in order. Empty means all of them.
	Patterns []string `yaml:"patterns" toml:"patterns"`
	// Theme picks the widget family for the abstract factory demo.
	Theme string `yaml:"theme" toml:"theme"`
	// Locale is a BCP 47 tag used for money formatting.
	Locale string `yaml:"locale" toml:"locale"`
	// Currency is the symbol printed in front of amounts.
	Currency string `yaml:"currency" toml:"currency"`
	// Color enables styled section headers.
	Color bool `yaml:"color" toml:"color"`
	// LogLevel is the diagnostic log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Theme:    ThemeLight,
		Locale:   "en-US",
		Currency: "$",
		LogLevel: "info",
	}
}

// Load reads path and decodes it on top of Default(). The decoder is chosen
// by extension. The result is validated before it is returned.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode yaml %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(b), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode toml %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks theme, locale, currency and log level.
func (c Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Theme)
	}
	if _, err := c.Tag(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Currency) == "" {
		return fmt.Errorf("%w: currency symbol is empty", ErrInvalidConfig)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Tag parses Locale into a language tag.
func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
	}
	return tag, nil
}
