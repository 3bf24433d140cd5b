// Package config loads the site settings: which page, platform and detail
// level to start on, the fixed toggle sets, and UI timings.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides: DOCSITE_DEFAULT_PAGE -> default_page.
const EnvPrefix = "DOCSITE_"

// AllPlatforms is the platform value that disables platform filtering.
const AllPlatforms = "all"

// Config holds the site settings.
type Config struct {
	DefaultPage        string        `yaml:"default_page" koanf:"default_page"`
	DefaultPlatform    string        `yaml:"default_platform" koanf:"default_platform"`
	DefaultDetailLevel string        `yaml:"default_detail_level" koanf:"default_detail_level"`
	Platforms          []string      `yaml:"platforms" koanf:"platforms"`
	DetailLevels       []string      `yaml:"detail_levels" koanf:"detail_levels"`
	SearchDebounce     time.Duration `yaml:"search_debounce" koanf:"search_debounce"`
	SearchFocusDelay   time.Duration `yaml:"search_focus_delay" koanf:"search_focus_delay"`
	CopyFeedback       time.Duration `yaml:"copy_feedback" koanf:"copy_feedback"`
	LogLevel           string        `yaml:"log_level" koanf:"log_level"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		DefaultPage:        "overview",
		DefaultPlatform:    AllPlatforms,
		DefaultDetailLevel: "quick",
		Platforms:          []string{AllPlatforms, "ios", "android"},
		DetailLevels:       []string{"quick", "detailed", "technical"},
		SearchDebounce:     200 * time.Millisecond,
		SearchFocusDelay:   300 * time.Millisecond,
		CopyFeedback:       2 * time.Second,
		LogLevel:           "info",
	}
}

// Load reads the YAML file at path, if it exists, over the defaults and then
// applies DOCSITE_* environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}
	return finish(k)
}

// Parse is Load for a YAML document already in memory, such as an embedded
// file in the browser build where there is no filesystem.
func Parse(data []byte) (*Config, error) {
	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return finish(k)
}

func finish(k *koanf.Koanf) (*Config, error) {
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Platforms) == 0 {
		return errors.New("platforms must not be empty")
	}
	if !slices.Contains(c.Platforms, AllPlatforms) {
		return fmt.Errorf("platforms must include %q", AllPlatforms)
	}
	if !slices.Contains(c.Platforms, c.DefaultPlatform) {
		return fmt.Errorf("invalid default_platform %q: must be one of %s", c.DefaultPlatform, strings.Join(c.Platforms, ", "))
	}

	if len(c.DetailLevels) == 0 {
		return errors.New("detail_levels must not be empty")
	}
	if !slices.Contains(c.DetailLevels, c.DefaultDetailLevel) {
		return fmt.Errorf("invalid default_detail_level %q: must be one of %s", c.DefaultDetailLevel, strings.Join(c.DetailLevels, ", "))
	}

	if c.DefaultPage == "" {
		return errors.New("default_page is required")
	}

	if c.SearchDebounce < 0 || c.SearchFocusDelay < 0 || c.CopyFeedback < 0 {
		return errors.New("durations must be non-negative")
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// HasPlatform reports whether p is one of the configured platforms.
func (c *Config) HasPlatform(p string) bool {
	return slices.Contains(c.Platforms, p)
}

// HasDetailLevel reports whether level is one of the configured levels.
func (c *Config) HasDetailLevel(level string) bool {
	return slices.Contains(c.DetailLevels, level)
}
