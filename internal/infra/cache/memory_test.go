package cache

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory_GetAddRemove(t *testing.T) {
	m := NewMemory[bool](10, time.Minute)

	_, ok := m.Get("u1")
	assert.False(t, ok)

	m.Add("u1", true)
	value, ok := m.Get("u1")
	assert.True(t, ok)
	assert.True(t, value)

	m.Remove("u1")
	_, ok = m.Get("u1")
	assert.False(t, ok)
}

func TestMemory_BoundedSize(t *testing.T) {
	m := NewMemory[bool](5, time.Minute)

	for i := range 20 {
		m.Add("user-"+strconv.Itoa(i), true)
	}

	// Eviction keeps the cache at its bound.
	assert.LessOrEqual(t, m.Len(), 5)

	// The most recently added entry survives.
	_, ok := m.Get("user-19")
	assert.True(t, ok)
}

func TestMemory_EntriesExpire(t *testing.T) {
	m := NewMemory[bool](10, 10*time.Millisecond)

	m.Add("u1", true)
	time.Sleep(30 * time.Millisecond)

	_, ok := m.Get("u1")
	assert.False(t, ok)
}

func TestMemory_Purge(t *testing.T) {
	m := NewMemory[string](10, time.Minute)

	m.Add("a", "1")
	m.Add("b", "2")
	m.Purge()

	assert.Equal(t, 0, m.Len())
}
