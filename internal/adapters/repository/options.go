// Package repository defines the activity directory store interface and errors.
package repository

import (
	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/domain/model"
)

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithActivities seeds the store with the given activities. Later entries
// with a duplicate name overwrite earlier ones, preserving name uniqueness.
func WithActivities(activities []model.Activity) Option {
	return func(s *MemoryStore) {
		s.seed = activities
	}
}
