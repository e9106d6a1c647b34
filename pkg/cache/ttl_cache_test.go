package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	c.Set("a", 1)

	val, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestExpiredEntryNeverReturned(t *testing.T) {
	// cleanupInterval uzun — süre kontrolünün Get içinde yapıldığını kanıtlar
	c := New[string, string](30*time.Millisecond, time.Hour)
	defer c.Close()

	c.Set("k", "v")
	time.Sleep(50 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestSetOverwrites(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Set("a", 2)

	val, _ := c.Get("a")
	assert.Equal(t, 2, val)
}

func TestDeleteIsImmediate(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCleanupRemovesExpiredEntries(t *testing.T) {
	c := New[string, int](10*time.Millisecond, 20*time.Millisecond)
	defer c.Close()

	c.Set("a", 1)
	time.Sleep(60 * time.Millisecond)

	// Fiziksel silme gerçekleşmiş olmalı — map büyümesi sızıntı yaratmaz
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()
	assert.Zero(t, size)
}
