package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := fs.Get(ctx, KeyCVData)
	require.NoError(t, err)
	assert.False(t, ok, "missing key reads as unset, not an error")

	require.NoError(t, fs.Set(ctx, KeyCVData, []byte(`{"full_name":"Jane"}`)))
	data, ok, err := fs.Get(ctx, KeyCVData)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"full_name":"Jane"}`), data)

	// Overwrite wins.
	require.NoError(t, fs.Set(ctx, KeyCVData, []byte(`{}`)))
	data, _, err = fs.Get(ctx, KeyCVData)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), data)
}

func TestFileStore_Delete(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Set(ctx, KeyToken, []byte("abc")))
	require.NoError(t, fs.Delete(ctx, KeyToken))
	_, ok, err := fs.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	assert.NoError(t, fs.Delete(ctx, KeyToken))
}

func TestFileStore_KeySanitization(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Set(ctx, "../escape/attempt", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "value stays inside the data directory")
	assert.NotContains(t, entries[0].Name(), string(filepath.Separator))

	data, ok, err := fs.Get(ctx, "../escape/attempt")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("x"), data)
}

func TestFileStore_EmptyDir(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestMemStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	_, ok, err := m.Get(ctx, KeyCoverLetter)
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte("hello")
	require.NoError(t, m.Set(ctx, KeyCoverLetter, value))

	// Mutating the caller's slice does not affect the stored copy.
	value[0] = 'X'
	data, ok, err := m.Get(ctx, KeyCoverLetter)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), data)

	// Nor does mutating the returned slice.
	data[0] = 'Y'
	data, _, err = m.Get(ctx, KeyCoverLetter)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	require.NoError(t, m.Delete(ctx, KeyCoverLetter))
	_, ok, err = m.Get(ctx, KeyCoverLetter)
	require.NoError(t, err)
	assert.False(t, ok)
}
