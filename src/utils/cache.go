package utils

import (
	"sync"
	"time"
)

type Cache[T any] struct {
	value      T
	cached     bool
	asOf       time.Time
	expiration time.Time
	mutex      sync.RWMutex
}

// NewCache initializes a new cache with an empty value.
func NewCache[T any]() *Cache[T] {
	var zero T
	return &Cache[T]{
		value: zero,
	}
}

// Set caches a value computed from data last changed at asOf. The entry
// expires after duration regardless.
func (c *Cache[T]) Set(value T, asOf time.Time, duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.value = value
	c.cached = true
	c.asOf = asOf
	c.expiration = time.Now().Add(duration)
}

// Get returns the cached value unless it expired or the data changed after
// the value was computed. changedAt must come from the same clock as the
// asOf passed to Set.
func (c *Cache[T]) Get(changedAt time.Time) (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if !c.cached || time.Now().After(c.expiration) || changedAt.After(c.asOf) {
		var zero T
		return zero, false
	}
	return c.value, true
}
