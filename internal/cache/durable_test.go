package cache_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/cache"
)

func TestDurableGetMiss(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	d, err := cache.OpenDurable(ctx, path)
	require.NoError(t, err)
	defer d.Close()

	_, ok, err := d.Get(ctx, "node-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDurablePutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	d, err := cache.OpenDurable(ctx, path)
	require.NoError(t, err)
	defer d.Close()

	ctx = cache.WithTimestamp(ctx, 1_700_000_000_000)
	require.NoError(t, d.Put(ctx, "node-1", "uint256"))

	got, ok, err := d.Get(ctx, "node-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "uint256", got)
}

func TestDurablePutOverwritesPriorEntry(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	d, err := cache.OpenDurable(ctx, path)
	require.NoError(t, err)
	defer d.Close()

	ctx1 := cache.WithTimestamp(ctx, 1)
	require.NoError(t, d.Put(ctx1, "node-1", "int8"))

	ctx2 := cache.WithTimestamp(ctx, 2)
	require.NoError(t, d.Put(ctx2, "node-1", "uint256"))

	got, ok, err := d.Get(ctx, "node-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "uint256", got)
}

func TestDurableReopenPersistsAcrossHandles(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	d1, err := cache.OpenDurable(ctx, path)
	require.NoError(t, err)
	require.NoError(t, d1.Put(ctx, "node-1", "bytes32"))
	require.NoError(t, d1.Close())

	d2, err := cache.OpenDurable(ctx, path)
	require.NoError(t, err)
	defer d2.Close()

	got, ok, err := d2.Get(ctx, "node-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "bytes32", got)
}
