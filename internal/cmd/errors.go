package cmd

import (
	"errors"

	"github.com/noiriko/create-noiriko/internal/cmdutil"
	oerrors "github.com/noiriko/create-noiriko/internal/errors"
	"github.com/noiriko/create-noiriko/internal/output"
)

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *oerrors.ExitError {
	return &oerrors.ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return oerrors.ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrCancelled):
		return oerrors.ExitSuccess
	case errors.Is(err, oerrors.ErrValidation):
		return oerrors.ExitValidationError
	default:
		return oerrors.ExitGeneralError
	}
}

// exitError attaches the exit code derived from err.
func exitError(err error) *oerrors.ExitError {
	code := ExitCodeFromError(err)
	output.Debug("command failed", "exit_code", code, "reason", oerrors.ExitCodeName(code))
	return NewExitError(err, code)
}

// printedExitError prints err with its hint, then attaches the exit code.
// main does not print it again.
func printedExitError(msg string, err error) error {
	cmdutil.PrintError(msg, err)
	exitErr := exitError(err)
	exitErr.Printed = true
	return exitErr
}
