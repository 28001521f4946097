package cliconfig

import "fmt"

// Load layers settings onto cfg: file, then environment, with explicitly
// changed flags (already stored in cfg) winning over both. envFile, if set,
// is loaded into the environment first. An empty settingsPath means the
// default path, which may be absent; an explicit path must exist.
func Load(cfg *Settings, settingsPath, envFile string, changed map[string]bool) error {
	if envFile != "" {
		if err := LoadEnvFile(envFile); err != nil {
			return err
		}
	}

	path := settingsPath
	if path == "" {
		path = DefaultSettingsPath()
	}
	if path != "" && (settingsPath != "" || FileExists(path)) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		ApplyFileConfig(cfg, fc, changed)
	}

	ApplyEnvConfig(cfg, changed)

	return cfg.Validate()
}
