package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_NextClampsAtLast(t *testing.T) {
	n := NewNavigator([]string{"a", "b", "c"})
	assert.Equal(t, 0, n.Current())
	assert.True(t, n.AtFirst())

	assert.Equal(t, 1, n.Next())
	assert.Equal(t, 2, n.Next())
	assert.True(t, n.AtLast())
	assert.Equal(t, 2, n.Next(), "Next at last step is a no-op")
}

func TestNavigator_BackClampsAtFirst(t *testing.T) {
	n := NewNavigator([]string{"a", "b", "c"})
	assert.Equal(t, 0, n.Back(), "Back at step 0 is a no-op")

	n.Next()
	n.Next()
	assert.Equal(t, 1, n.Back())
	assert.Equal(t, 0, n.Back())
	assert.Equal(t, 0, n.Back())
}

func TestNavigator_JumpTo(t *testing.T) {
	n := NewNavigator([]string{"a", "b", "c"})

	// Any in-range target is allowed, even skipping ahead.
	got, err := n.JumpTo(2)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, "c", n.CurrentName())

	got, err = n.JumpTo(0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestNavigator_JumpToOutOfRange(t *testing.T) {
	n := NewNavigator([]string{"a", "b", "c"})
	_, err := n.JumpTo(1)
	require.NoError(t, err)

	for _, i := range []int{-1, 3, 99} {
		got, err := n.JumpTo(i)
		var ise *InvalidStepError
		require.ErrorAs(t, err, &ise, "index %d", i)
		assert.Equal(t, i, ise.Index)
		assert.Equal(t, 3, ise.Count)
		assert.Equal(t, 1, got, "current step unchanged after invalid jump")
	}
}
