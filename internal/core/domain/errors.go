package domain

import "errors"

// Sentinel errors shared by the use cases and mapped to HTTP statuses by
// the inbound adapter. Callers wrap them with context using %w.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrDuplicateUTR      = errors.New("utr already recorded")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidCredential = errors.New("invalid credentials")
)
