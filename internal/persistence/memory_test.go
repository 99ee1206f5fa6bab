package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AbsentKey(t *testing.T) {
	store := NewMemoryStore()

	_, ok, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyUsers, []byte(`[{"id":"1"}]`)))

	val, ok, err := store.Get(ctx, KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `[{"id":"1"}]`, string(val))

	require.NoError(t, store.Delete(ctx, KeyUsers))
	_, ok, err = store.Get(ctx, KeyUsers)
	require.NoError(t, err)
	require.False(t, ok)

	// deleting an absent key is not an error
	require.NoError(t, store.Delete(ctx, KeyUsers))
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyCurrentToken, []byte("abc")))
	val, _, err := store.Get(ctx, KeyCurrentToken)
	require.NoError(t, err)

	val[0] = 'x'
	again, _, err := store.Get(ctx, KeyCurrentToken)
	require.NoError(t, err)
	require.Equal(t, "abc", string(again))
}
