package agent

import "errors"

// Sentinel errors for pipeline operations.
var (
	// ErrNoAssignments indicates a course with zero assignments.
	ErrNoAssignments = errors.New("no assignments found for course")

	// ErrAssignmentNotFound indicates a direct assignment lookup that
	// returned no record.
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrRemoteCreation indicates that repository or page creation
	// returned no result. Never retried.
	ErrRemoteCreation = errors.New("remote creation failed")

	// ErrConfigIncomplete indicates missing credentials for the chosen
	// destination, detected before any remote call.
	ErrConfigIncomplete = errors.New("configuration incomplete")

	// ErrInvalidType indicates a caller-supplied assignment type that is
	// neither "coding" nor "writing".
	ErrInvalidType = errors.New("invalid assignment type")

	// ErrMissingCourse indicates a missing course identifier.
	ErrMissingCourse = errors.New("course id is required")
)
