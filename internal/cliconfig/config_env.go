package cliconfig

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnvConfig.
const (
	EnvConfig   = "APIQ_CONFIG"
	EnvLogLevel = "APIQ_LOG_LEVEL"
	EnvColor    = "APIQ_COLOR"
)

// LoadEnvFile loads KEY=value lines from a dotenv file into the process
// environment. Variables that are already set are not overridden.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvConfig applies configuration from environment variables (APIQ_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Settings, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setPath(FlagConfig, os.Getenv(EnvConfig), &cfg.ConfigPath)
	s.setString(FlagLogLevel, os.Getenv(EnvLogLevel), &cfg.LogLevel)
	s.setString(FlagColor, os.Getenv(EnvColor), &cfg.Color)
}
