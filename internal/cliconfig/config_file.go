package cliconfig

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML settings file layout.
type FileConfig struct {
	ConfigPath string `toml:"config_path"`
	LogLevel   string `toml:"log_level"`
	Color      string `toml:"color"`
}

// LoadFileConfig reads and parses a TOML settings file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyFileConfig applies configuration from a file to the Settings struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Settings, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setPath(FlagConfig, fc.ConfigPath, &cfg.ConfigPath)
	s.setString(FlagLogLevel, fc.LogLevel, &cfg.LogLevel)
	s.setString(FlagColor, fc.Color, &cfg.Color)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
