// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/adapters/repository"
)

// RegistrationDependencies defines the interface for roster mutations.
type RegistrationDependencies interface {
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) (string, error)
}

// SignupHandler handles signup requests.
type SignupHandler struct {
	deps RegistrationDependencies
}

// NewSignupHandler creates a new signup handler.
func NewSignupHandler(deps RegistrationDependencies) *SignupHandler {
	return &SignupHandler{deps: deps}
}

// HandleSignup handles POST /activities/{activity}/signup?email= requests.
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	activity, email, ok := registrationParams(w, r)
	if !ok {
		return
	}
	msg, err := h.deps.Signup(r.Context(), activity, email)
	if err != nil {
		writeRegistrationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// UnregisterHandler handles unregister requests.
type UnregisterHandler struct {
	deps RegistrationDependencies
}

// NewUnregisterHandler creates a new unregister handler.
func NewUnregisterHandler(deps RegistrationDependencies) *UnregisterHandler {
	return &UnregisterHandler{deps: deps}
}

// HandleUnregister handles POST /activities/{activity}/unregister?email= requests.
func (h *UnregisterHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	activity, email, ok := registrationParams(w, r)
	if !ok {
		return
	}
	msg, err := h.deps.Unregister(r.Context(), activity, email)
	if err != nil {
		writeRegistrationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// registrationParams extracts the activity path segment (URL-decoded by the
// mux) and the email query parameter, rejecting blank emails with a 400.
func registrationParams(w http.ResponseWriter, r *http.Request) (activity, email string, ok bool) {
	activity = r.PathValue("activity")
	email = strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeDetail(w, http.StatusBadRequest, ErrMissingEmail)
		return "", "", false
	}
	return activity, email, true
}

// writeRegistrationError translates directory errors to the wire contract:
// unknown activity -> 404, rejected registration -> 400.
func writeRegistrationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		writeDetail(w, http.StatusNotFound, err)
	case errors.Is(err, repository.ErrAlreadyRegistered),
		errors.Is(err, repository.ErrNotRegistered):
		writeDetail(w, http.StatusBadRequest, err)
	default:
		writeDetail(w, http.StatusInternalServerError, err)
	}
}
