package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid restscope configuration or input.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates a file or directory could not be read.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a project, snapshot or file was not found.
	ErrNotFound = errors.New("not found")
)
