package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/percolation/common"
	"github.com/uyouii/percolation/unionfind"
)

func TestNewWeightedQuickUnion_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -100} {
		uf, err := unionfind.NewWeightedQuickUnion(size)
		assert.Nil(t, uf)
		assert.ErrorIs(t, err, common.ErrorInvalidArgument)
	}
}

func TestWeightedQuickUnion_InitialState(t *testing.T) {
	uf, err := unionfind.NewWeightedQuickUnion(5)
	require.NoError(t, err)

	assert.Equal(t, 5, uf.Count())
	assert.Equal(t, 5, uf.Len())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, uf.Find(i))
		assert.True(t, uf.Connected(i, i), "connected must be reflexive")
	}
	assert.False(t, uf.Connected(0, 1))
}

func TestWeightedQuickUnion_UnionIsSymmetricAndTransitive(t *testing.T) {
	uf, err := unionfind.NewWeightedQuickUnion(10)
	require.NoError(t, err)

	uf.Union(1, 2)
	uf.Union(3, 2)
	uf.Union(7, 8)

	assert.True(t, uf.Connected(1, 2))
	assert.True(t, uf.Connected(2, 1))
	assert.True(t, uf.Connected(1, 3))
	assert.True(t, uf.Connected(7, 8))
	assert.False(t, uf.Connected(3, 7))
	assert.Equal(t, 7, uf.Count())

	// redundant union changes nothing
	uf.Union(1, 3)
	assert.Equal(t, 7, uf.Count())

	uf.Union(2, 8)
	assert.True(t, uf.Connected(1, 7))
	assert.Equal(t, uf.Find(1), uf.Find(8))
	assert.Equal(t, 6, uf.Count())
}

func TestWeightedQuickUnion_LongChain(t *testing.T) {
	const n = 1000
	uf, err := unionfind.NewWeightedQuickUnion(n)
	require.NoError(t, err)

	for i := 1; i < n; i++ {
		uf.Union(i-1, i)
	}
	assert.Equal(t, 1, uf.Count())
	assert.True(t, uf.Connected(0, n-1))
}

func TestWeightedQuickUnion_OutOfRangePanics(t *testing.T) {
	uf, err := unionfind.NewWeightedQuickUnion(3)
	require.NoError(t, err)

	assert.Panics(t, func() { uf.Find(3) })
	assert.Panics(t, func() { uf.Union(-1, 0) })
}

func TestNewFactory(t *testing.T) {
	factory := unionfind.NewFactory()

	uf, err := factory(4)
	require.NoError(t, err)
	uf.Union(0, 3)
	assert.True(t, uf.Connected(3, 0))

	_, err = factory(0)
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)
}
