// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/adapters/repository"
	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/domain/catalog"
	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/domain/model"
	"github.com/guru01092001/skills-getting-started-with-github-copilot/pkg/logger"
	"github.com/guru01092001/skills-getting-started-with-github-copilot/pkg/metrics"
)

// Service implements the API dependencies for the activity directory.
type Service struct {
	mu sync.RWMutex

	// Core components
	directory repository.Store

	// Configuration
	seed []model.Activity

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCatalog replaces the default seed catalog. Intended for tests that
// need a directory with known contents.
func WithCatalog(activities []model.Activity) Option {
	return func(s *Service) {
		if len(activities) > 0 {
			s.seed = activities
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		seed:   catalog.Default(),
		logger: nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components and seeds the directory.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting activities service...")

	s.directory = repository.NewMemoryStore(ctx,
		repository.WithActivities(s.seed),
	)
	metrics.UpdateDirectoryParticipants(s.directory.ParticipantCount(ctx))

	s.started = true
	s.logger.Info(ctx, "activities service started",
		logger.Int("activities", s.directory.Count(ctx)),
	)

	return nil
}

// Stop shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "activities service stopped")
}

// List returns a snapshot of the full directory keyed by activity name.
func (s *Service) List(ctx context.Context) map[string]model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.directory == nil {
		return map[string]model.Activity{}
	}
	return s.directory.Snapshot(ctx)
}

// Signup registers email for the named activity.
// Fails with repository.ErrActivityNotFound for an unknown activity and
// repository.ErrAlreadyRegistered for a duplicate email; the roster is
// unchanged on failure. No capacity check is performed: max_participants
// is informational only.
func (s *Service) Signup(ctx context.Context, activity, email string) (string, error) {
	s.mu.RLock()
	store := s.directory
	s.mu.RUnlock()

	if store == nil {
		return "", ErrNotStarted
	}

	if err := store.AddParticipant(ctx, activity, email); err != nil {
		metrics.RecordRegistrationError(registrationErrorReason(err))
		return "", err
	}

	metrics.RecordSignup()
	metrics.UpdateDirectoryParticipants(store.ParticipantCount(ctx))
	s.logger.Debug(ctx, "signup recorded",
		logger.String("activity", activity),
		logger.String("email", email),
	)
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the named activity's roster.
// Fails with repository.ErrActivityNotFound for an unknown activity and
// repository.ErrNotRegistered when the email is not on the roster.
func (s *Service) Unregister(ctx context.Context, activity, email string) (string, error) {
	s.mu.RLock()
	store := s.directory
	s.mu.RUnlock()

	if store == nil {
		return "", ErrNotStarted
	}

	if err := store.RemoveParticipant(ctx, activity, email); err != nil {
		metrics.RecordRegistrationError(registrationErrorReason(err))
		return "", err
	}

	metrics.RecordUnregistration()
	metrics.UpdateDirectoryParticipants(store.ParticipantCount(ctx))
	s.logger.Debug(ctx, "unregistration recorded",
		logger.String("activity", activity),
		logger.String("email", email),
	)
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

// GetStats returns a snapshot of service statistics for the /stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":           s.started,
		"totalActivities":   0,
		"totalParticipants": 0,
	}
	if s.directory != nil {
		ctx := context.Background()
		stats["totalActivities"] = s.directory.Count(ctx)
		stats["totalParticipants"] = s.directory.ParticipantCount(ctx)
	}
	return stats
}

// registrationErrorReason maps directory errors to metric label values.
func registrationErrorReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, repository.ErrNotRegistered):
		return "not_registered"
	default:
		return "unknown"
	}
}
