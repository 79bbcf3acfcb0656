// Package model defines the core domain types for the activity roster service.
package model

// Activity represents one extracurricular offering. The activity name is the
// roster map key and is not stored redundantly inside the record.
type Activity struct {
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// Remaining returns the number of open spots.
func (a *Activity) Remaining() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull returns true when no spots remain.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasParticipant reports whether email is already on the activity's roster.
// Matching is exact string equality; no normalization is applied.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Roster maps activity names to their records.
type Roster map[string]Activity

// MessageResponse confirms a successful signup or unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the standard JSON error envelope.
type DetailResponse struct {
	Detail string `json:"detail"`
}
