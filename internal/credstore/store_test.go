package credstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveLoadRemove(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	// Nothing stored yet
	key, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "", key)

	// Save persists the value
	require.NoError(t, store.Save("sk-test-123"))

	key, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", key)

	// Save overwrites
	require.NoError(t, store.Save("sk-test-456"))

	key, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-test-456", key)

	// Remove clears the stored value
	require.NoError(t, store.Remove())

	key, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "", key)
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("sk-persisted"))

	// A fresh store over the same directory sees the value, like a new
	// browser session reading local storage.
	reopened, err := Open(dir)
	require.NoError(t, err)

	key, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-persisted", key)
}

func TestStore_RemoveAbsentIsNoError(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove())
}

func TestStore_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("sk-test"))

	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestStore_FilePermissions(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save("sk-secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "a credential file must not be world-readable")
}

func TestStore_StoresRawOpaqueString(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	// The credential is opaque: no shape is validated or normalized.
	odd := "  key with spaces and ÜTF-8 ✓  "
	require.NoError(t, store.Save(odd))

	key, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, odd, key)
}
