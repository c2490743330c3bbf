// Package keylock serialises work per key.
package keylock

import "sync"

// Map hands out one mutex per key. Mutexes are never released; keys are
// player IDs and instance handles, both bounded by the session.
type Map[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*sync.Mutex
}

// New creates an empty lock map
func New[K comparable]() *Map[K] {
	return &Map[K]{locks: make(map[K]*sync.Mutex)}
}

// Lock blocks until key is free and returns its unlock func.
func (m *Map[K]) Lock(key K) func() {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}
