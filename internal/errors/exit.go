package errors

// Process exit codes.
const (
	// ExitSuccess covers success and user cancellation.
	ExitSuccess = 0

	// ExitGeneralError covers an existing target, write failures, and
	// install failures.
	ExitGeneralError = 1

	// ExitValidationError covers an invalid project name or option value.
	ExitValidationError = 2
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	default:
		return "Unknown"
	}
}
