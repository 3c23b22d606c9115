package repository

import (
	"context"
	"sync"
	"time"

	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/domain/model"
	"github.com/guru01092001/skills-getting-started-with-github-copilot/pkg/metrics"
)

// Map-based, in-memory Store implementation.
//
// The directory is fixed after construction: activities are only mutated
// through their rosters, never added or removed. A single RWMutex guards
// all state; rosters are small so membership checks stay linear scans.

// MemoryStore implements Store with a mutex-guarded map.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity

	seed []model.Activity
}

// NewMemoryStore creates a store seeded from the provided options.
func NewMemoryStore(_ context.Context, opts ...Option) *MemoryStore {
	s := &MemoryStore{}
	for _, opt := range opts {
		opt(s)
	}

	s.activities = make(map[string]*model.Activity, len(s.seed))
	for _, a := range s.seed {
		a := a.Clone()
		if a.Participants == nil {
			a.Participants = []string{}
		}
		s.activities[a.Name] = &a
	}
	s.seed = nil

	metrics.UpdateDirectoryActivities(len(s.activities))
	for name, a := range s.activities {
		metrics.UpdateActivityRoster(name, len(a.Participants))
	}

	return s
}

// Snapshot returns a deep copy of the full directory keyed by activity name.
func (s *MemoryStore) Snapshot(_ context.Context) map[string]model.Activity {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.Clone()
	}

	metrics.RecordDirectoryQueryLatency(float64(time.Since(start).Microseconds()) / 1000.0)
	return out
}

// Get returns a copy of one activity.
func (s *MemoryStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// AddParticipant appends email to the activity's roster.
// The membership check and the append happen under one lock acquisition,
// so duplicate signups cannot race past each other.
func (s *MemoryStore) AddParticipant(_ context.Context, name, email string) error {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadyRegistered
	}
	a.Participants = append(a.Participants, email)

	metrics.UpdateActivityRoster(name, len(a.Participants))
	metrics.RecordDirectoryUpdateLatency(float64(time.Since(start).Microseconds()) / 1000.0)
	return nil
}

// RemoveParticipant removes email from the activity's roster, preserving the
// order of the remaining entries.
func (s *MemoryStore) RemoveParticipant(_ context.Context, name, email string) error {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	idx := -1
	for i, p := range a.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotRegistered
	}
	a.Participants = append(a.Participants[:idx], a.Participants[idx+1:]...)

	metrics.UpdateActivityRoster(name, len(a.Participants))
	metrics.RecordDirectoryUpdateLatency(float64(time.Since(start).Microseconds()) / 1000.0)
	return nil
}

// Count returns the number of activities in the directory.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// ParticipantCount returns the total number of registrations across all activities.
func (s *MemoryStore) ParticipantCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, a := range s.activities {
		total += len(a.Participants)
	}
	return total
}
