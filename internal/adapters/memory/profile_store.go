// Package memory provides an in-memory ports.ProfileStore.
package memory

import (
	"context"
	"sync"

	"github.com/bft-labs/apiq/internal/domain"
)

// ProfileStore keeps the profile document in memory.
type ProfileStore struct {
	mu    sync.Mutex
	cfg   domain.Config
	saved bool
	saves int
}

// NewProfileStore returns a store holding a copy of cfg, or an empty store
// when called without arguments.
func NewProfileStore(cfg ...domain.Config) *ProfileStore {
	s := &ProfileStore{}
	if len(cfg) > 0 {
		s.cfg = clone(cfg[0])
		s.saved = true
	}
	return s
}

// Load returns a copy of the stored document.
func (s *ProfileStore) Load(ctx context.Context) (domain.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return domain.NewConfig(), nil
	}
	return clone(s.cfg), nil
}

// Save replaces the stored document with a copy of cfg.
func (s *ProfileStore) Save(ctx context.Context, cfg domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = clone(cfg)
	s.saved = true
	s.saves++
	return nil
}

// Clear forgets the stored document.
func (s *ProfileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = domain.Config{}
	s.saved = false
	return nil
}

// Saves returns how many times Save was called.
func (s *ProfileStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func clone(cfg domain.Config) domain.Config {
	out := domain.Config{Default: cfg.Default, Profiles: make(map[string]domain.Profile, len(cfg.Profiles))}
	for name, p := range cfg.Profiles {
		fields := make(map[string]string, len(p.Fields))
		for k, v := range p.Fields {
			fields[k] = v
		}
		out.Profiles[name] = domain.Profile{Fields: fields}
	}
	return out
}
