// Package service implements business logic and orchestration between HTTP
// handlers and the roster store.
package service

import (
	"context"
	"fmt"

	"github.com/mergington/activity-roster/internal/model"
	"github.com/mergington/activity-roster/internal/roster"
)

// RosterService orchestrates catalog queries and membership mutations.
type RosterService struct {
	store *roster.Store
}

// NewRosterService constructs a RosterService around a store.
func NewRosterService(store *roster.Store) *RosterService {
	return &RosterService{store: store}
}

// ListActivities returns a snapshot of the full roster.
func (s *RosterService) ListActivities(ctx context.Context) model.Roster {
	return s.store.List()
}

// Signup registers email for the named activity. Emails are compared by
// exact string equality; no trimming or case folding is applied, so the
// service only rejects the empty string. Store sentinels are surfaced
// unwrapped so handlers can map them to the correct HTTP status.
func (s *RosterService) Signup(ctx context.Context, activityName, email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	return s.store.Signup(activityName, email)
}

// Unregister removes email from the named activity.
func (s *RosterService) Unregister(ctx context.Context, activityName, email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	return s.store.Unregister(activityName, email)
}
