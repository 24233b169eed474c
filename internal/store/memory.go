package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps the context in process memory. It backs the HTTP host
// when persistence is turned off.
type MemoryStore struct {
	mu         sync.Mutex
	env        *Envelope
	ttlSeconds int
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore(ttlSeconds int) *MemoryStore {
	return &MemoryStore{ttlSeconds: ttlSeconds}
}

// Save replaces the stored context with a private copy of env.
func (s *MemoryStore) Save(_ context.Context, env Envelope) error {
	cp, err := clone(env)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.env = &cp
	return nil
}

// Load returns a copy of the stored context.
func (s *MemoryStore) Load(_ context.Context) (Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.env == nil {
		return Envelope{}, ErrNoContext
	}
	if expired(s.env.CreatedAt, s.ttlSeconds) {
		s.env = nil
		return Envelope{}, ErrNoContext
	}
	return clone(*s.env)
}

// Clear drops the stored context.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.env = nil
	return nil
}

// Stats returns information about the stored context.
func (s *MemoryStore) Stats(_ context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Backend: BackendMemory}
	if s.env != nil {
		fillStats(&st, *s.env, s.ttlSeconds)
	}
	return st, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// clone deep-copies env through JSON, the same form the other backends
// persist, so callers can never alias the stored maps.
func clone(env Envelope) (Envelope, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return Envelope{}, fmt.Errorf("copying context: %w", err)
	}
	var out Envelope
	if err := json.Unmarshal(data, &out); err != nil {
		return Envelope{}, fmt.Errorf("copying context: %w", err)
	}
	return out, nil
}
