package rut

import (
	"context"
	"fmt"
)

// RUT is an immutable national identifier: a positive correlative and a
// verifier character ('0'-'9' or 'K').
//
// The zero value represents an absent RUT and is never returned by a
// successful constructor.
type RUT struct {
	correlative int
	verifier    byte
}

// Parse reads raw input such as "12.345.678-5", "12345678-5" or "123456785".
// The verifier is not checked against the correlative; use ParseWith for that.
func Parse(raw string) (RUT, error) {
	correlative, verifier, err := Normalize(raw)
	if err != nil {
		return RUT{}, err
	}
	return RUT{correlative: correlative, verifier: verifier}, nil
}

// ParseWith parses raw and runs v against the result. Either a RUT accepted by
// v is returned, or the zero RUT and the first error. A nil v skips validation.
func ParseWith(ctx context.Context, raw string, v Validator) (RUT, error) {
	r, err := Parse(raw)
	if err != nil {
		return RUT{}, err
	}
	if v == nil {
		return r, nil
	}
	if err := v.Validate(ctx, r); err != nil {
		return RUT{}, err
	}
	return r, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(raw string) RUT {
	r, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return r
}

// New builds a RUT from explicit components without checking the verifier
// against the correlative. A lowercase 'k' is accepted.
func New(correlative int, verifier byte) (RUT, error) {
	if verifier == 'k' {
		verifier = 'K'
	}
	if correlative < 1 {
		return RUT{}, &ParseError{Input: fmt.Sprintf("%d-%c", correlative, verifier), Reason: ReasonZeroCorrelative}
	}
	if !isVerifier(rune(verifier)) {
		return RUT{}, &ParseError{Input: fmt.Sprintf("%d-%c", correlative, verifier), Reason: ReasonInvalidVerifier}
	}
	return RUT{correlative: correlative, verifier: verifier}, nil
}

func (r RUT) Correlative() int { return r.correlative }

func (r RUT) Verifier() byte { return r.verifier }

// IsZero reports whether r is the zero (absent) RUT.
func (r RUT) IsZero() bool {
	return r.correlative == 0 && r.verifier == 0
}

// Valid reports whether the verifier matches the checksum of the correlative.
func (r RUT) Valid() bool {
	return !r.IsZero() && Checksum(r.correlative) == r.verifier
}

func (r RUT) Equal(other RUT) bool {
	return r == other
}

// String returns the Readable form, e.g. "12.345.678-5".
func (r RUT) String() string {
	return Format(r, Readable)
}

func (r RUT) Format(m Mode) string {
	return Format(r, m)
}
