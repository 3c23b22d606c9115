package repository

import "errors"

// Sentinel kinds for directory errors. Messages match the wire contract
// surfaced by the HTTP layer.
var (
	ErrActivityNotFound  = errors.New("Activity not found")
	ErrAlreadyRegistered = errors.New("Student is already signed up")
	ErrNotRegistered     = errors.New("Student is not registered for this activity")
)
