// Package store provides the per-session transaction cache and the loading of
// optional classifier rule overrides from YAML files.
package store

import (
	"sync"

	"mbeck/finance-analyzer/internal/models"
)

// SessionStore keeps the annotated transactions of each upload session in
// memory, keyed by an opaque session string. It is created once per process
// and has no TTL or eviction; a session lives until Clear is called or the
// process exits. Concurrent writes to the same key are last-write-wins.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]models.Transaction
	metadata map[string]models.Metadata
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string][]models.Transaction),
		metadata: make(map[string]models.Metadata),
	}
}

// Save replaces the transactions and metadata stored under a session key.
func (s *SessionStore) Save(sessionID string, transactions []models.Transaction, metadata models.Metadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = transactions
	s.metadata[sessionID] = metadata
}

// Get returns the transactions of a session. An absent key yields an empty
// slice, not an error.
func (s *SessionStore) Get(sessionID string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sessionID]
}

// Metadata returns the statement metadata stored with a session.
func (s *SessionStore) Metadata(sessionID string) models.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metadata[sessionID]
}

// Clear removes a session. Clearing an absent key is a no-op.
func (s *SessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	delete(s.metadata, sessionID)
}
