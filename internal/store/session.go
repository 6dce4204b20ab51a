// Package store keeps parsed task lists for the duration of a session.
// There is no persistence layer: entries live in an in-memory expirable
// LRU and disappear on TTL, eviction, or restart.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"syllabus-sync/internal/model"
)

// SessionStore maps session IDs to the task lists a parse produced.
type SessionStore struct {
	cache *expirable.LRU[string, []model.Task]
}

// NewSessionStore creates a store holding up to size sessions for ttl.
func NewSessionStore(size int, ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache: expirable.NewLRU[string, []model.Task](size, nil, ttl),
	}
}

// Put stores tasks under a fresh session ID and returns the ID.
func (s *SessionStore) Put(tasks []model.Task) string {
	id := uuid.NewString()
	s.cache.Add(id, tasks)
	return id
}

// Get returns the tasks for a session, if it is still alive.
func (s *SessionStore) Get(id string) ([]model.Task, bool) {
	return s.cache.Get(id)
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	return s.cache.Len()
}
