// Package repository defines the activity directory store interface and errors.
package repository

import (
	"context"

	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/domain/model"
)

// Store provides read/write access to the activity directory.
type Store interface {
	// Snapshot returns a deep copy of the full directory keyed by activity name.
	Snapshot(ctx context.Context) map[string]model.Activity

	// Get returns a copy of one activity.
	// Returns ErrActivityNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// AddParticipant appends email to the activity's roster.
	// Returns ErrActivityNotFound for an unknown activity and
	// ErrAlreadyRegistered when the email is already on the roster.
	AddParticipant(ctx context.Context, name, email string) error

	// RemoveParticipant removes email from the activity's roster.
	// Returns ErrActivityNotFound for an unknown activity and
	// ErrNotRegistered when the email is not on the roster.
	RemoveParticipant(ctx context.Context, name, email string) error

	// Count returns the number of activities in the directory.
	Count(ctx context.Context) int

	// ParticipantCount returns the total number of registrations across
	// all activities.
	ParticipantCount(ctx context.Context) int
}
