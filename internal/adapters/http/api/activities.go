// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// ActivitiesDependencies defines the interface for directory listing.
type ActivitiesDependencies interface {
	List(ctx context.Context) map[string]Activity
}

// ActivitiesHandler handles directory listing requests.
type ActivitiesHandler struct {
	deps ActivitiesDependencies
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivitiesDependencies) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleGetActivities handles GET /activities requests. The response is a
// JSON object mapping activity names to their attributes.
func (h *ActivitiesHandler) HandleGetActivities(w http.ResponseWriter, r *http.Request) {
	activities := h.deps.List(r.Context())
	writeJSON(w, http.StatusOK, activities)
}
