package cliconfig

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultSettings(t *testing.T) {
	cfg := DefaultSettings()

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %v, want auto", cfg.Color)
	}
	if filepath.Base(cfg.ConfigPath) != "config.yml" || filepath.Base(filepath.Dir(cfg.ConfigPath)) != ".apiq" {
		t.Errorf("ConfigPath = %v, want ~/.apiq/config.yml", cfg.ConfigPath)
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name      string
		settings  Settings
		wantErr   bool
		wantLevel zerolog.Level
		wantColor string
	}{
		{
			name:      "valid defaults",
			settings:  Settings{ConfigPath: "/tmp/config.yml", LogLevel: "warn", Color: "auto"},
			wantLevel: zerolog.WarnLevel,
			wantColor: ColorAuto,
		},
		{
			name:      "normalizes case and spaces",
			settings:  Settings{ConfigPath: "/tmp/config.yml", LogLevel: " DEBUG ", Color: "Never"},
			wantLevel: zerolog.DebugLevel,
			wantColor: ColorNever,
		},
		{
			name:     "missing config path",
			settings: Settings{LogLevel: "warn", Color: "auto"},
			wantErr:  true,
		},
		{
			name:     "invalid log level",
			settings: Settings{ConfigPath: "/tmp/config.yml", LogLevel: "loud", Color: "auto"},
			wantErr:  true,
		},
		{
			name:     "invalid color",
			settings: Settings{ConfigPath: "/tmp/config.yml", LogLevel: "info", Color: "rainbow"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if lvl := tt.settings.Level(); lvl != tt.wantLevel {
				t.Errorf("Level() = %v, want %v", lvl, tt.wantLevel)
			}
			if tt.settings.Color != tt.wantColor {
				t.Errorf("Color = %v, want %v", tt.settings.Color, tt.wantColor)
			}
		})
	}
}

func TestSettings_UseColor(t *testing.T) {
	tests := []struct {
		color    string
		terminal bool
		want     bool
	}{
		{ColorAuto, true, true},
		{ColorAuto, false, false},
		{ColorAlways, false, true},
		{ColorNever, true, false},
	}
	for _, tt := range tests {
		got := Settings{Color: tt.color}.UseColor(tt.terminal)
		if got != tt.want {
			t.Errorf("UseColor(%s, terminal=%v) = %v, want %v", tt.color, tt.terminal, got, tt.want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	if got := ExpandHome("~/x/config.yml"); got != "/home/tester/x/config.yml" {
		t.Errorf("ExpandHome = %v, want /home/tester/x/config.yml", got)
	}
	if got := ExpandHome("/abs/config.yml"); got != "/abs/config.yml" {
		t.Errorf("ExpandHome changed absolute path: %v", got)
	}
	if got := ExpandHome("~user/config.yml"); !strings.HasPrefix(got, "~user") {
		t.Errorf("ExpandHome expanded ~user: %v", got)
	}
}
