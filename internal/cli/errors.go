package cli

import "fmt"

// ValidationError indicates the command input was usable as a path but
// produced nothing to work on, e.g. a directory with no accepted files.
// Validation failures exit with status 1 and never mutate the store.
type ValidationError struct {
	Field   string // the flag or argument that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
