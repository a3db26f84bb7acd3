package rut

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned when input cannot be normalized into a
	// correlative and a verifier.
	ErrMalformedInput = errors.New("malformed rut")

	// ErrInvalidIdentity is returned when a well-formed RUT is rejected by a validator.
	ErrInvalidIdentity = errors.New("invalid rut")

	// ErrUnknownMode is returned by ParseMode for unsupported format names.
	ErrUnknownMode = errors.New("unknown rut format mode")
)

// Reasons reported by ParseError.
const (
	ReasonTooShort          = "expected a correlative followed by a verifier"
	ReasonNonNumericBody    = "correlative must contain only digits"
	ReasonInvalidVerifier   = "verifier must be a digit or K"
	ReasonZeroCorrelative   = "correlative must be positive"
	ReasonCorrelativeTooBig = "correlative is out of range"
)

// ParseError describes why raw input could not be read as a RUT.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedInput, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedInput
}

// InvalidError carries the rejected RUT and a human-readable reason.
// Validators should return it (or wrap it) to signal rejection.
type InvalidError struct {
	RUT    RUT
	Reason string
}

// NewInvalidError builds the rejection error validators are expected to return.
func NewInvalidError(r RUT, reason string) *InvalidError {
	return &InvalidError{RUT: r, Reason: reason}
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrInvalidIdentity, Format(e.RUT, Hyphened), e.Reason)
}

func (e *InvalidError) Unwrap() error {
	return ErrInvalidIdentity
}

// AsInvalidError extracts an *InvalidError from an error chain.
func AsInvalidError(err error) (*InvalidError, bool) {
	var invalid *InvalidError
	if errors.As(err, &invalid) {
		return invalid, true
	}
	return nil, false
}
