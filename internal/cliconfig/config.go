package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Flag names that settings can be overridden by.
const (
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
	FlagColor    = "color"
)

// Settings holds the ambient CLI configuration for apiq. Request options and
// profiles are not part of it.
type Settings struct {
	// ConfigPath is the profile document location.
	ConfigPath string
	LogLevel   string
	Color      string
}

// DefaultSettings returns Settings with default values.
func DefaultSettings() Settings {
	return Settings{
		ConfigPath: defaultHomeFile("config.yml"),
		LogLevel:   zerolog.WarnLevel.String(),
		Color:      ColorAuto,
	}
}

// DefaultSettingsPath returns ~/.apiq/settings.toml, or "" if the home
// directory is unknown.
func DefaultSettingsPath() string {
	return defaultHomeFile("settings.toml")
}

func defaultHomeFile(name string) string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".apiq", name)
	}
	return ""
}

// Validate checks the settings for errors and normalizes values.
func (s *Settings) Validate() error {
	if s.ConfigPath == "" {
		return fmt.Errorf("config path is required (home directory unknown; pass --%s)", FlagConfig)
	}

	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}

	s.Color = strings.ToLower(strings.TrimSpace(s.Color))
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", s.Color)
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (s Settings) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// UseColor reports whether output should be coloured given whether stdout is
// a terminal.
func (s Settings) UseColor(isTerminal bool) bool {
	switch s.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setPath is setString with "~/" expanded to the home directory.
func (s *configSetter) setPath(flag, value string, dst *string) {
	s.setString(flag, ExpandHome(value), dst)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(h, p[2:])
}
