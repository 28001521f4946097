package ports

import (
	"context"

	"github.com/bft-labs/apiq/internal/domain"
)

// ProfileStore persists the profile document.
type ProfileStore interface {
	// Load retrieves the persisted document.
	// Returns an empty config and nil error if no document exists.
	// Returns an error wrapping domain.ErrIO for unreadable or corrupt storage.
	Load(ctx context.Context) (domain.Config, error)

	// Save overwrites the persisted document. Readers never observe a
	// partially written document.
	Save(ctx context.Context, cfg domain.Config) error

	// Clear deletes the persisted document. Clearing an absent document is
	// not an error.
	Clear(ctx context.Context) error
}
