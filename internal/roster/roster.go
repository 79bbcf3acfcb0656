// Package roster implements the in-memory store for the activity roster.
// State is volatile: seeded once at startup, mutated in place, discarded at
// process exit.
package roster

import (
	"errors"
	"sync"

	"github.com/mergington/activity-roster/internal/model"
)

// ErrNotFound is returned when a referenced activity does not exist.
var ErrNotFound = errors.New("activity not found")

// ErrAlreadyRegistered is returned when the same email signs up twice.
var ErrAlreadyRegistered = errors.New("already signed up for this activity")

// ErrActivityFull is returned when an activity has no remaining capacity.
var ErrActivityFull = errors.New("activity is full")

// ErrNotRegistered is returned when unregistering an email that is not on
// the activity's roster.
var ErrNotRegistered = errors.New("not signed up for this activity")

// Store owns the process-wide roster. All reads and mutations go through a
// single mutex so the lookup → membership/capacity check → append/remove
// sequence is one critical section: concurrent signups can never jointly
// exceed an activity's capacity, and concurrent signup/unregister for the
// same (activity, email) pair cannot interleave.
type Store struct {
	mu         sync.Mutex
	activities model.Roster
}

// NewStore constructs a Store holding a private copy of the seed roster.
// Callers keep no aliases into the store's state.
func NewStore(seed model.Roster) *Store {
	s := &Store{activities: make(model.Roster, len(seed))}
	for name, a := range seed {
		a.Participants = append([]string(nil), a.Participants...)
		s.activities[name] = a
	}
	return s
}

// List returns a snapshot of the full roster. The returned map and its
// participant slices are copies; mutating them does not affect the store.
func (s *Store) List() model.Roster {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(model.Roster, len(s.activities))
	for name, a := range s.activities {
		a.Participants = append([]string(nil), a.Participants...)
		out[name] = a
	}
	return out
}

// Get returns a snapshot of a single activity or ErrNotFound.
func (s *Store) Get(name string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	a.Participants = append([]string(nil), a.Participants...)
	return a, nil
}

// Signup appends email to the named activity's participants. The duplicate
// check runs before the capacity check, so a repeat signup to a full
// activity reports ErrAlreadyRegistered, not ErrActivityFull.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadyRegistered
	}
	if a.IsFull() {
		return ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	s.activities[name] = a
	return nil
}

// Unregister removes exactly one occurrence of email from the named
// activity's participants, preserving the relative order of the rest.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			s.activities[name] = a
			return nil
		}
	}
	return ErrNotRegistered
}
