package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid project name or option value.
	ErrValidation = errors.New("validation error")

	// ErrExists indicates the target project directory already exists.
	ErrExists = errors.New("already exists")

	// ErrCancelled indicates the user aborted the prompt flow.
	ErrCancelled = errors.New("cancelled")

	// ErrPathConflict indicates two template producers emitted the same path.
	ErrPathConflict = errors.New("path conflict")

	// ErrInstall indicates the package manager install step failed.
	ErrInstall = errors.New("install failed")

	// ErrPermission indicates insufficient permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file or executable was not found.
	ErrNotFound = errors.New("not found")
)
