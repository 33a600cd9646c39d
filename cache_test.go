package dock

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheBasicOperations(t *testing.T) {
	const capacity = 10
	cache := FactoryNewCache[string](capacity)

	items := []string{"item1", "item2", "item3", "item4", "item5"}
	indices := make([]int, len(items))
	for i, item := range items {
		index, err := cache.Register(item, item)
		require.NoError(t, err)
		assert.Equal(t, i, index)
		indices[i] = index
	}
	assert.Equal(t, len(items), cache.Len())

	for i, item := range items {
		index, found := cache.GetIndex(item)
		require.True(t, found, item)
		assert.Equal(t, indices[i], index)
		assert.Equal(t, item, *cache.GetItem(index))
	}

	_, found := cache.GetIndex("nonexistent")
	assert.False(t, found)
}

func TestCacheRegisterIsIdempotent(t *testing.T) {
	cache := FactoryNewCache[int](4)
	first, err := cache.Register("key", 1)
	require.NoError(t, err)
	second, err := cache.Register("key", 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, *cache.GetItem(first))
	assert.Equal(t, 1, cache.Len())
}

func TestCacheCapacity(t *testing.T) {
	const capacity = 5
	cache := FactoryNewCache[int](capacity)
	for i := range capacity {
		_, err := cache.Register(fmt.Sprintf("item%d", i), i)
		require.NoError(t, err)
	}

	_, err := cache.Register("overflow", 100)
	var full CacheFullError
	require.ErrorAs(t, err, &full)
	assert.Equal(t, capacity, full.Capacity)
}

func TestCacheClear(t *testing.T) {
	cache := FactoryNewCache[string](10).(*SimpleCache[string])
	items := []string{"item1", "item2", "item3"}
	for _, item := range items {
		_, err := cache.Register(item, item)
		require.NoError(t, err)
	}

	cache.Clear()
	for _, item := range items {
		_, found := cache.GetIndex(item)
		assert.False(t, found, item)
	}
	assert.Zero(t, cache.Len())

	for _, item := range items {
		_, err := cache.Register(item, item)
		require.NoError(t, err)
	}
}

func TestCacheWithComplexTypes(t *testing.T) {
	cache := FactoryNewCache[Position](10)
	positions := map[string]Position{
		"pos1": {X: 1, Y: 2},
		"pos2": {X: 3, Y: 4},
		"pos3": {X: 5, Y: 6, Z: 7},
	}
	for key, pos := range positions {
		_, err := cache.Register(key, pos)
		require.NoError(t, err)
	}

	for key, want := range positions {
		index, found := cache.GetIndex(key)
		require.True(t, found, key)
		assert.Equal(t, want, *cache.GetItem(index))
	}
}
