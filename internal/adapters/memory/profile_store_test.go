package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/apiq/internal/domain"
)

func TestProfileStore_CopiesOnLoadAndSave(t *testing.T) {
	ctx := context.Background()
	cfg := domain.NewConfig()
	cfg.Profiles["dev"] = domain.Profile{Fields: map[string]string{"token": "a"}}

	store := NewProfileStore(cfg)
	cfg.Profiles["dev"].Fields["token"] = "mutated"

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Profiles["dev"].Fields["token"])

	got.Profiles["dev"].Fields["token"] = "b"
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again.Profiles["dev"].Fields["token"])
}

func TestProfileStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewProfileStore()

	require.NoError(t, store.Save(ctx, domain.Config{Default: "x", Profiles: map[string]domain.Profile{"x": {}}}))
	assert.Equal(t, 1, store.Saves())

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Default)
	assert.Empty(t, got.Profiles)
}
