package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")
)
