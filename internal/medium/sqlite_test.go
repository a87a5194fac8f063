package medium

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) *SQLite {
	t.Helper()
	m, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestSQLite_SetAndGet(t *testing.T) {
	m := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k1", []byte{0x01, 0x02}))

	v, err := m.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, v)
}

func TestSQLite_GetAbsentReturnsNilNil(t *testing.T) {
	m := setupSQLite(t)

	v, err := m.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLite_SetUpsertsValue(t *testing.T) {
	m := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("old")))
	require.NoError(t, m.Set(ctx, "k", []byte("new")))

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSQLite_KeysEnumeratesAll(t *testing.T) {
	m := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte{0xAA}))
	require.NoError(t, m.Set(ctx, "b", []byte{0xBB}))

	keys, err := m.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestSQLite_DeleteIsIdempotent(t *testing.T) {
	m := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "x", []byte{0x01}))
	require.NoError(t, m.Delete(ctx, "x"))

	v, err := m.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, m.Delete(ctx, "x"))
}

func TestSQLite_DeleteManyRemovesOnlyGivenKeys(t *testing.T) {
	m := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte{1}))
	require.NoError(t, m.Set(ctx, "b", []byte{2}))
	require.NoError(t, m.Set(ctx, "c", []byte{3}))

	require.NoError(t, m.DeleteMany(ctx, []string{"a", "c"}))

	keys, err := m.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)
}

func TestSQLite_ClearRemovesEverything(t *testing.T) {
	m := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte{1}))
	require.NoError(t, m.Set(ctx, "b", []byte{2}))
	require.NoError(t, m.Clear(ctx))

	keys, err := m.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSQLite_ErrorsAreWrapped(t *testing.T) {
	m := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, m.Close())

	_, err := m.Get(ctx, "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to get local_store[k]")

	err = m.Set(ctx, "k", []byte("v"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set local_store[k]")

	err = m.Delete(ctx, "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to delete local_store[k]")

	_, err = m.Keys(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list local_store keys")
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + t.TempDir() + "/store.db"

	m, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, m.Set(ctx, "durable", []byte("yes")))
	require.NoError(t, m.Close())

	m2, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m2.Close() })

	v, err := m2.Get(ctx, "durable")
	require.NoError(t, err)
	require.Equal(t, []byte("yes"), v)
}
