package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFileReadsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	_, ok, err := store.Get(context.Background(), KeySuppliers)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeySuppliers, []byte(`[{"id":"s1"}]`)))
	require.NoError(t, store.Set(ctx, KeyCurrentToken, []byte(`"tok"`)))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	val, ok, err := reopened.Get(ctx, KeySuppliers)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `[{"id":"s1"}]`, string(val))

	require.NoError(t, reopened.Delete(ctx, KeyCurrentToken))
	final, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok, err = final.Get(ctx, KeyCurrentToken)
	require.NoError(t, err)
	require.False(t, ok)
}
