// internal/kv/kv_test.go
package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("k", []byte(`[1,2,3]`)))
	got, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)

	require.NoError(t, store.Set("k", []byte(`[]`)))
	got, err = store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, store.Delete("k"))
	_, err = store.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()

	original := []byte(`["a"]`)
	require.NoError(t, store.Set("k", original))
	original[2] = 'z'

	got, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["a"]`), got)

	got[2] = 'y'
	again, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["a"]`), again)
}

func TestMemoryStoreDeleteMissingIsNoop(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Delete("never-set"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("eventide_events", []byte(`[{"id":"event-1"}]`)))
	got, err := store.Get("eventide_events")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"event-1"}]`, string(got))

	require.NoError(t, store.Set("eventide_events", []byte(`[]`)))
	got, err = store.Get("eventide_events")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, store.Delete("eventide_events"))
	_, err = store.Get("eventide_events")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", []byte(`[true]`)))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	got, err := reopened.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[true]`), got)
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	// A key with path separators must not escape the data directory.
	key := "../outside/secret"
	require.NoError(t, store.Set(key, []byte(`[]`)))

	got, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "outside"))
	assert.True(t, os.IsNotExist(err))
}
