package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/apiq/internal/domain"
)

const (
	// ConfigFileName is the profile document name inside the apiq home.
	ConfigFileName = "config.yml"

	dirPermissions  = 0o700
	filePermissions = 0o600
)

// ProfileFileStore implements ports.ProfileStore using a YAML file.
type ProfileFileStore struct {
	path string
}

// NewProfileFileStore creates a store backed by the document at path.
func NewProfileFileStore(path string) *ProfileFileStore {
	return &ProfileFileStore{path: path}
}

// Load retrieves the profile document from disk.
// Returns an empty config and nil error if no document exists.
func (s *ProfileFileStore) Load(ctx context.Context) (domain.Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("%w: read config %s: %w", domain.ErrIO, s.path, err)
	}

	cfg := domain.NewConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("%w: parse config %s: %w", domain.ErrIO, s.path, err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]domain.Profile)
	}
	return cfg, nil
}

// Save persists the document atomically (write to temp file, then rename).
func (s *ProfileFileStore) Save(ctx context.Context, cfg domain.Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPermissions); err != nil {
		return fmt.Errorf("%w: create config dir: %w", domain.ErrIO, err)
	}

	data, err := marshal(cfg)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, filePermissions); err != nil {
		return fmt.Errorf("%w: write config: %w", domain.ErrIO, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replace config: %w", domain.ErrIO, err)
	}
	return nil
}

// Clear removes the document. A missing document is not an error.
func (s *ProfileFileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: remove config: %w", domain.ErrIO, err)
	}
	return nil
}

func marshal(cfg domain.Config) ([]byte, error) {
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]domain.Profile)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: encode config: %w", domain.ErrIO, err)
	}
	return data, nil
}
