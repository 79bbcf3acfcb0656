// Package seed loads the initial roster dataset. A default dataset is
// embedded in the binary; an alternative YAML file can be supplied at
// startup.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mergington/activity-roster/internal/model"
)

//go:embed activities.yaml
var defaultSeed []byte

// Default returns the embedded seed roster.
func Default() (model.Roster, error) {
	return parse(defaultSeed)
}

// FromFile loads a seed roster from a YAML file on disk.
func FromFile(path string) (model.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parse(data)
}

// parse decodes the YAML mapping and checks the roster invariants the
// store relies on: positive capacity, participants within capacity, and no
// duplicate emails per activity.
func parse(data []byte) (model.Roster, error) {
	var roster model.Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("seed contains no activities")
	}

	for name, a := range roster {
		if name == "" {
			return nil, fmt.Errorf("seed contains an activity with an empty name")
		}
		if a.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be positive, got %d", name, a.MaxParticipants)
		}
		if len(a.Participants) > a.MaxParticipants {
			return nil, fmt.Errorf("activity %q: %d seeded participants exceed capacity %d",
				name, len(a.Participants), a.MaxParticipants)
		}
		seen := make(map[string]struct{}, len(a.Participants))
		for _, email := range a.Participants {
			if _, dup := seen[email]; dup {
				return nil, fmt.Errorf("activity %q: duplicate participant %q", name, email)
			}
			seen[email] = struct{}{}
		}
	}
	return roster, nil
}
