package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Settings
		expected   Settings
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				ConfigPath: "/etc/apiq/config.yml",
				LogLevel:   "debug",
				Color:      "never",
			},
			changed: map[string]bool{},
			initial: testDefaults(),
			expected: Settings{
				ConfigPath: "/etc/apiq/config.yml",
				LogLevel:   "debug",
				Color:      "never",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				ConfigPath: "/etc/apiq/config.yml",
				LogLevel:   "debug",
			},
			changed: map[string]bool{FlagConfig: true},
			initial: Settings{ConfigPath: "/flag/config.yml", LogLevel: "warn", Color: "auto"},
			expected: Settings{
				ConfigPath: "/flag/config.yml", // unchanged because flag was set
				LogLevel:   "debug",
				Color:      "auto",
			},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    testDefaults(),
			expected:   testDefaults(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "settings.toml")
		content := `
config_path = "/srv/apiq/config.yml"
log_level = "info"
color = "always"
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		fc, err := LoadFileConfig(configPath)
		if err != nil {
			t.Fatalf("LoadFileConfig() error = %v", err)
		}
		if fc.ConfigPath != "/srv/apiq/config.yml" {
			t.Errorf("ConfigPath = %v, want /srv/apiq/config.yml", fc.ConfigPath)
		}
		if fc.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", fc.LogLevel)
		}
		if fc.Color != "always" {
			t.Errorf("Color = %v, want always", fc.Color)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "invalid.toml")
		if err := os.WriteFile(configPath, []byte("log_level = [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFileConfig(configPath); err == nil {
			t.Error("LoadFileConfig() expected error for invalid TOML")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFileConfig(filepath.Join(tmpDir, "nope.toml")); err == nil {
			t.Error("LoadFileConfig() expected error for missing file")
		}
	})
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existing, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(existing) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "missing.txt")) {
		t.Error("FileExists() = true for missing file")
	}
}

// testDefaults returns fixed defaults independent of $HOME.
func testDefaults() Settings {
	return Settings{ConfigPath: "/home/test/.apiq/config.yml", LogLevel: "warn", Color: "auto"}
}
