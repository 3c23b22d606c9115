// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// List returns the full directory keyed by activity name.
	List(ctx context.Context) map[string]Activity

	// Signup registers email for an activity and returns the confirmation message.
	Signup(ctx context.Context, activity, email string) (string, error)

	// Unregister removes email from an activity and returns the confirmation message.
	Unregister(ctx context.Context, activity, email string) (string, error)
}

// Activity mirrors the read shape returned by directory queries.
type Activity = model.Activity

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	activitiesHandler *ActivitiesHandler
	signupHandler     *SignupHandler
	unregisterHandler *UnregisterHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		activitiesHandler: NewActivitiesHandler(deps),
		signupHandler:     NewSignupHandler(deps),
		unregisterHandler: NewUnregisterHandler(deps),
	}
}

// Register attaches all HTTP routes to mux. Path parameters are matched
// with Go 1.22 method patterns, so the mux rejects wrong methods for us.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /activities", MetricsMiddleware(s.activitiesHandler.HandleGetActivities, "activities"))
	mux.HandleFunc("POST /activities/{activity}/signup", MetricsMiddleware(s.signupHandler.HandleSignup, "signup"))
	mux.HandleFunc("POST /activities/{activity}/unregister", MetricsMiddleware(s.unregisterHandler.HandleUnregister, "unregister"))
}

// messageResponse is the success envelope for signup/unregister.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse is the failure envelope, wire-compatible with the
// original frontend: {"detail": "..."}.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, detailResponse{Detail: msg})
}
