package task

import "errors"

var (
	// ErrNotFound is returned when no task exists for the given id.
	ErrNotFound = errors.New("task not found")

	// ErrMissingID is returned when a request omits the required id.
	ErrMissingID = errors.New("task id required")
)
