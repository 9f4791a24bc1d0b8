package domain

import "errors"

// Error taxonomy for the swipe pipeline. Everything below the orchestrator
// propagates upward unmodified; classification happens once, here, and the
// transport adapter maps each class to a response status.
var (
	// ErrValidation marks requests with missing or malformed identifiers.
	// Surfaced before any persistence is attempted.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks reads of a project or asset that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPersistence marks any downstream storage read/write failure.
	ErrPersistence = errors.New("persistence failure")
)
