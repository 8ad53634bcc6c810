package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadOnEmptyStoreReturnsNoToken(t *testing.T) {
	s := openTestStore(t)

	token, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok-1"))
	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// Saving again upserts.
	require.NoError(t, s.Save(ctx, "tok-2"))
	token, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestClearIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.db")

	s1, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s1.Save(ctx, "tok-persisted"))
	require.NoError(t, s1.Close())

	s2, err := Open(ctx, path)
	require.NoError(t, err)
	defer s2.Close()

	token, err := s2.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-persisted", token)
}
