package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercraft/careercraft/internal/store"
)

func TestClearCredentials(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	require.NoError(t, st.Set(ctx, store.KeyToken, []byte("tok")))
	require.NoError(t, st.Set(ctx, store.KeyPersonalInfo, []byte(`{"username":"jane"}`)))
	require.NoError(t, st.Set(ctx, store.KeyCVData, []byte(`{"full_name":"Jane"}`)))

	require.NoError(t, clearCredentials(ctx, st))

	_, ok, err := st.Get(ctx, store.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = st.Get(ctx, store.KeyPersonalInfo)
	require.NoError(t, err)
	assert.False(t, ok)

	// Drafts survive a logout.
	_, ok, err = st.Get(ctx, store.KeyCVData)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClearCredentials_Idempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	assert.NoError(t, clearCredentials(ctx, st))
	assert.NoError(t, clearCredentials(ctx, st))
}
