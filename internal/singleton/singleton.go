// Package singleton provides a lazily created shared instance.
package singleton

import "sync"

// Singleton holds at most one instance of T. The first claimed or created value wins.
type Singleton[T any] struct {
	mu      sync.Mutex
	factory func() T
	value   T
	set     bool
}

func New[T any](factory func() T) *Singleton[T] {
	return &Singleton[T]{factory: factory}
}

// Instance returns the current instance, creating it with the factory if needed.
func (s *Singleton[T]) Instance() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.set {
		s.value = s.factory()
		s.set = true
	}
	return s.value
}

// Claim makes v the instance if there is none yet. Returns false when another
// instance already exists, the caller should discard v.
func (s *Singleton[T]) Claim(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.set {
		return false
	}
	s.value = v
	s.set = true
	return true
}

// Reset drops the current instance.
func (s *Singleton[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value = zero
	s.set = false
}
