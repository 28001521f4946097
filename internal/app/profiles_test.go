package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logAdapter "github.com/bft-labs/apiq/internal/adapters/log"
	"github.com/bft-labs/apiq/internal/adapters/memory"
	"github.com/bft-labs/apiq/internal/domain"
)

func newProfileService(cfg ...domain.Config) (*ProfileService, *memory.ProfileStore) {
	store := memory.NewProfileStore(cfg...)
	return NewProfileService(store, logAdapter.NewNoopLogger()), store
}

func TestProfileService_SetCreatesAndUpserts(t *testing.T) {
	ctx := context.Background()
	svc, store := newProfileService()

	require.NoError(t, svc.Set(ctx, "dev", "base_url=http://a", "token=one", "token=two", "extra=x=y"))
	require.NoError(t, svc.Set(ctx, "dev", "base_url=http://b"))

	cfg, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"base_url": "http://b",
		"token":    "two",
		"extra":    "x=y",
	}, cfg.Profiles["dev"].Fields)
}

func TestProfileService_SetWithoutPairsCreatesEmptyProfile(t *testing.T) {
	ctx := context.Background()
	svc, store := newProfileService()

	require.NoError(t, svc.Set(ctx, "blank"))

	cfg, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.HasProfile("blank"))
}

func TestProfileService_SetRejectsMalformedPairs(t *testing.T) {
	ctx := context.Background()
	svc, store := newProfileService()

	err := svc.Set(ctx, "dev", "token=ok", "broken")
	assert.ErrorIs(t, err, domain.ErrUsage)
	assert.Zero(t, store.Saves())

	assert.ErrorIs(t, svc.Set(ctx, "", "a=b"), domain.ErrUsage)
}

func TestProfileService_Use(t *testing.T) {
	ctx := context.Background()
	cfg := domain.NewConfig()
	cfg.Default = "dev"
	cfg.Profiles["dev"] = domain.Profile{}
	cfg.Profiles["prod"] = domain.Profile{}
	svc, store := newProfileService(cfg)

	require.NoError(t, svc.Use(ctx, "prod"))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "prod", got.Default)
}

func TestProfileService_UseMissingLeavesConfigUnchanged(t *testing.T) {
	ctx := context.Background()
	cfg := domain.NewConfig()
	cfg.Default = "dev"
	cfg.Profiles["dev"] = domain.Profile{}
	svc, store := newProfileService(cfg)

	err := svc.Use(ctx, "missing-profile")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Zero(t, store.Saves())

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dev", got.Default)
	assert.False(t, got.HasProfile("missing-profile"))
}

func TestProfileService_ShowIncludesTokens(t *testing.T) {
	ctx := context.Background()
	cfg := domain.NewConfig()
	cfg.Default = "dev"
	cfg.Profiles["dev"] = domain.Profile{Fields: map[string]string{"token": "s3cret", "base_url": "http://x"}}
	svc, _ := newProfileService(cfg)

	var out bytes.Buffer
	require.NoError(t, svc.Show(ctx, &out))

	assert.Contains(t, out.String(), "default: dev\n")
	assert.Contains(t, out.String(), "profiles:\n")
	assert.Contains(t, out.String(), "base_url: http://x\n")
	assert.Contains(t, out.String(), "token: s3cret\n")
}

func TestProfileService_ClearTwice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProfileService(domain.NewConfig())

	require.NoError(t, svc.Clear(ctx))
	require.NoError(t, svc.Clear(ctx))
}
