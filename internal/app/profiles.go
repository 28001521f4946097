package app

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/apiq/internal/domain"
	"github.com/bft-labs/apiq/internal/ports"
)

// ProfileService implements the config subcommands on top of a ProfileStore.
type ProfileService struct {
	store  ports.ProfileStore
	logger ports.Logger
}

// NewProfileService creates a ProfileService.
func NewProfileService(store ports.ProfileStore, logger ports.Logger) *ProfileService {
	return &ProfileService{store: store, logger: logger}
}

// Set creates the profile if needed and upserts every key=value pair in
// order, so a later duplicate key wins. All pairs are parsed before anything
// is written.
func (s *ProfileService) Set(ctx context.Context, name string, pairs ...string) error {
	if name == "" {
		return fmt.Errorf("%w: profile name is required", domain.ErrUsage)
	}
	assignments := make([]Assignment, 0, len(pairs))
	for _, raw := range pairs {
		a, err := ParseAssignment(raw)
		if err != nil {
			return err
		}
		assignments = append(assignments, a)
	}

	cfg, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]domain.Profile)
	}
	profile := cfg.Profiles[name]
	for _, a := range assignments {
		profile.Set(a.Key, a.Value)
	}
	cfg.Profiles[name] = profile

	if err := s.store.Save(ctx, cfg); err != nil {
		return err
	}
	s.logger.Debug("profile updated", ports.String("profile", name), ports.Int("fields", len(assignments)))
	return nil
}

// Use makes name the default profile. An unknown name returns
// domain.ErrProfileNotFound and leaves the document untouched.
func (s *ProfileService) Use(ctx context.Context, name string) error {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if !cfg.HasProfile(name) {
		return fmt.Errorf("%w: %q", domain.ErrProfileNotFound, name)
	}
	cfg.Default = name
	return s.store.Save(ctx, cfg)
}

// Show writes the whole document as YAML, tokens included.
func (s *ProfileService) Show(ctx context.Context, w io.Writer) error {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]domain.Profile)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Clear deletes the document.
func (s *ProfileService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
