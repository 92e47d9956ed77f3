// Package store keeps the example contacts in memory.
package store

import (
	"errors"
	"maps"
	"slices"
	"sync"
	"time"
)

// ErrNotFound is returned for an unknown contact id.
var ErrNotFound = errors.New("store: contact not found")

// Contact is a single address book entry.
type Contact struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// Store is a concurrency-safe in-memory contact list.
type Store struct {
	mu       sync.RWMutex
	nextID   int64
	contacts map[int64]Contact
}

// New returns an empty store.
func New() *Store {
	return &Store{contacts: make(map[int64]Contact)}
}

// List returns the contacts ordered by id.
func (s *Store) List() []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Contact, 0, len(s.contacts))
	for _, id := range slices.Sorted(maps.Keys(s.contacts)) {
		out = append(out, s.contacts[id])
	}
	return out
}

// Add stores a new contact and returns it with its id.
func (s *Store) Add(name, email string) Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	c := Contact{ID: s.nextID, Name: name, Email: email, CreatedAt: time.Now()}
	s.contacts[c.ID] = c
	return c
}

// Rename changes the name of contact id.
func (s *Store) Rename(id int64, name string) (Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return Contact{}, ErrNotFound
	}
	c.Name = name
	s.contacts[id] = c
	return c, nil
}

// Delete removes contact id.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[id]; !ok {
		return ErrNotFound
	}
	delete(s.contacts, id)
	return nil
}
