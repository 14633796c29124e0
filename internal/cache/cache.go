// Package cache provides the in-process keyed store each engine owns for its
// per-conversation state. Access assumes a single logical writer per
// conversation id; concurrent writers are safe but last write wins.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Store is a bounded keyed cache with optional TTL. A zero max size means
// unbounded; when bounded, the least recently written entry is evicted first.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List
	maxSize int
	ttl     time.Duration
	now     func() time.Time
}

type entry[T any] struct {
	key       string
	value     T
	expiresAt time.Time
}

// New creates a Store. maxSize == 0 disables the size bound, ttl == 0 disables
// expiry.
func New[T any](maxSize int, ttl time.Duration) *Store[T] {
	return &Store[T]{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached value and whether it was present and unexpired.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	el, ok := s.entries[key]
	if !ok {
		return zero, false
	}
	e := el.Value.(*entry[T])
	if s.ttl > 0 && s.now().After(e.expiresAt) {
		s.order.Remove(el)
		delete(s.entries, key)
		return zero, false
	}
	return e.value, true
}

// Put stores a value, overwriting any previous entry for the key.
func (s *Store[T]) Put(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	if el, ok := s.entries[key]; ok {
		e := el.Value.(*entry[T])
		e.value = value
		e.expiresAt = expiresAt
		s.order.MoveToBack(el)
		return
	}

	el := s.order.PushBack(&entry[T]{key: key, value: value, expiresAt: expiresAt})
	s.entries[key] = el

	if s.maxSize > 0 && s.order.Len() > s.maxSize {
		oldest := s.order.Front()
		if oldest != nil {
			s.order.Remove(oldest)
			delete(s.entries, oldest.Value.(*entry[T]).key)
		}
	}
}

// Delete removes a key; deleting a missing key is a no-op.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[key]; ok {
		s.order.Remove(el)
		delete(s.entries, key)
	}
}

// Len reports the number of live entries, counting expired ones until touched.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
