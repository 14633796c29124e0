package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetMissing(t *testing.T) {
	s := New[string](0, 0)

	val, ok := s.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, "", val)
}

func TestStore_PutOverwritesLastWriteWins(t *testing.T) {
	s := New[int](0, 0)

	s.Put("conv-1", 1)
	s.Put("conv-1", 2)

	val, ok := s.Get("conv-1")
	assert.True(t, ok)
	assert.Equal(t, 2, val)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Delete(t *testing.T) {
	s := New[int](0, 0)
	s.Put("conv-1", 1)

	s.Delete("conv-1")
	_, ok := s.Get("conv-1")
	assert.False(t, ok)

	// Deleting again is a no-op.
	s.Delete("conv-1")
	assert.Equal(t, 0, s.Len())
}

func TestStore_EvictsOldestWhenBounded(t *testing.T) {
	s := New[int](2, 0)

	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("c", 3)

	_, ok := s.Get("a")
	assert.False(t, ok, "oldest entry should be evicted")

	_, ok = s.Get("b")
	assert.True(t, ok)
	_, ok = s.Get("c")
	assert.True(t, ok)
}

func TestStore_TTLExpiry(t *testing.T) {
	s := New[int](0, time.Minute)
	current := time.Now()
	s.now = func() time.Time { return current }

	s.Put("conv-1", 1)

	_, ok := s.Get("conv-1")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = s.Get("conv-1")
	assert.False(t, ok, "entry should expire after TTL")
}
