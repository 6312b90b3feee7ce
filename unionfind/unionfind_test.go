// SPDX-License-Identifier: MIT

package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/unionfind"
)

// TestNew_InvalidSize verifies that empty or negative forests are rejected.
func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		uf, err := unionfind.New(n)
		assert.Nil(t, uf)
		assert.ErrorIs(t, err, unionfind.ErrInvalidSize, "n=%d", n)
	}
}

// TestNew_Singletons verifies that every element starts as its own root.
func TestNew_Singletons(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, uf.Len())
	assert.Equal(t, 5, uf.Count())

	for i := 0; i < 5; i++ {
		root, err := uf.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, root)
	}
}

// TestUnion_MergesAndCounts walks a small sequence of unions:
//
//	{0,1} {2,3} then {0,1,2,3}; 4 stays alone.
func TestUnion_MergesAndCounts(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)

	require.NoError(t, uf.Union(0, 1))
	require.NoError(t, uf.Union(2, 3))
	assert.Equal(t, 3, uf.Count())

	ok, err := uf.Connected(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, uf.Union(1, 3))
	assert.Equal(t, 2, uf.Count())

	ok, _ = uf.Connected(0, 2)
	assert.True(t, ok)
	ok, _ = uf.Connected(3, 4)
	assert.False(t, ok)
}

// TestUnion_Idempotent ensures repeated unions do not change the set count.
func TestUnion_Idempotent(t *testing.T) {
	uf, _ := unionfind.New(3)
	require.NoError(t, uf.Union(0, 1))
	require.NoError(t, uf.Union(1, 0))
	require.NoError(t, uf.Union(0, 0))
	assert.Equal(t, 2, uf.Count())
}

// TestUnion_WeightedRoot checks that the larger tree keeps its root.
func TestUnion_WeightedRoot(t *testing.T) {
	uf, _ := unionfind.New(4)
	require.NoError(t, uf.Union(0, 1))
	require.NoError(t, uf.Union(0, 2))
	big, _ := uf.Find(0)

	require.NoError(t, uf.Union(3, 0))
	root, _ := uf.Find(3)
	assert.Equal(t, big, root)
}

// TestOutOfRange ensures every accessor rejects indices outside [0, n).
func TestOutOfRange(t *testing.T) {
	uf, _ := unionfind.New(3)

	_, err := uf.Find(-1)
	assert.ErrorIs(t, err, unionfind.ErrOutOfRange)
	_, err = uf.Find(3)
	assert.ErrorIs(t, err, unionfind.ErrOutOfRange)
	_, err = uf.Connected(0, 3)
	assert.ErrorIs(t, err, unionfind.ErrOutOfRange)
	assert.ErrorIs(t, uf.Union(3, 0), unionfind.ErrOutOfRange)
	assert.Equal(t, 3, uf.Count())
}

// TestLongChain builds a 10k-element path and checks it collapses to one set.
func TestLongChain(t *testing.T) {
	const n = 10_000
	uf, _ := unionfind.New(n)
	for i := 1; i < n; i++ {
		require.NoError(t, uf.Union(i-1, i))
	}
	assert.Equal(t, 1, uf.Count())

	ok, err := uf.Connected(0, n-1)
	require.NoError(t, err)
	assert.True(t, ok)
}
