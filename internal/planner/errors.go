package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrEmptySessionID  = errors.New("session id is empty")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidDateID   = errors.New("date must be YYYY-MM-DD")
)
