package contracts

import "sync"

// State holds shared data for one top-level parse invocation. It is threaded
// by reference through every hook at every depth, so mutations made by one
// field's hooks are visible to later fields and to schema-level hooks in the
// same call. A fresh parse requires a fresh State supplied by the caller.
type State struct {
	values map[string]any
	mu     sync.RWMutex
}

// NewState creates an empty parse state.
func NewState() *State {
	return &State{
		values: make(map[string]any),
	}
}

// Set stores a value in the state.
func (s *State) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get retrieves a value from the state.
func (s *State) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, exists := s.values[key]
	return value, exists
}

// GetString retrieves a string value from the state.
func (s *State) GetString(key string) (string, bool) {
	value, exists := s.Get(key)
	if !exists {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

// GetInt retrieves an int value from the state.
func (s *State) GetInt(key string) (int, bool) {
	value, exists := s.Get(key)
	if !exists {
		return 0, false
	}
	i, ok := value.(int)
	return i, ok
}

// Delete removes a value from the state.
func (s *State) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Len returns the number of stored values.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Copy creates an independent copy of the state.
func (s *State) Copy() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	next := NewState()
	for k, v := range s.values {
		next.values[k] = v
	}
	return next
}
