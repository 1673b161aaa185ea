package models

import "errors"

// Typed failures surfaced to callers; controllers map them to HTTP statuses.
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrOutsideGeofence   = errors.New("cannot submit attendance outside project area")
	ErrAlreadyCheckedIn  = errors.New("check-in already submitted")
	ErrAlreadyCheckedOut = errors.New("check-out already submitted")
	ErrNotCheckedIn      = errors.New("cannot check out without checking in first")
	ErrInvalidSession    = errors.New("invalid session type")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
