package utils_test

import (
	"testing"
	"time"

	"inventario/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	asOf := time.Date(2024, time.May, 14, 10, 0, 0, 0, time.UTC)

	t.Run("should return the cached value while the data is unchanged", func(t *testing.T) {
		cache := utils.NewCache[string]()
		cache.Set("resumen", asOf, time.Minute)

		value, found := cache.Get(asOf)
		assert.True(t, found)
		assert.Equal(t, "resumen", value)
	})

	t.Run("should miss when nothing was cached", func(t *testing.T) {
		cache := utils.NewCache[int]()

		value, found := cache.Get(time.Time{})
		assert.False(t, found)
		assert.Zero(t, value)
	})

	t.Run("should miss once the value expired", func(t *testing.T) {
		cache := utils.NewCache[string]()
		cache.Set("resumen", asOf, 10*time.Millisecond)
		time.Sleep(30 * time.Millisecond)

		_, found := cache.Get(asOf)
		assert.False(t, found)
	})

	t.Run("should miss when the data changed after caching", func(t *testing.T) {
		cache := utils.NewCache[string]()
		cache.Set("resumen", asOf, time.Minute)

		_, found := cache.Get(asOf.Add(time.Nanosecond))
		assert.False(t, found)
	})

	t.Run("should compare against the data clock, not wall time", func(t *testing.T) {
		cache := utils.NewCache[string]()
		past := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
		cache.Set("resumen", past, time.Minute)

		_, found := cache.Get(past.Add(time.Second))
		assert.False(t, found)
	})
}
