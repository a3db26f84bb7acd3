package rut

import (
	"context"
	"fmt"
)

// Validator checks a well-formed RUT. A nil error means the RUT is accepted;
// any non-nil error means it is rejected. Rejections should be *InvalidError
// values (see NewInvalidError); validators backed by I/O may return other
// errors for transport failures but must never report success on failure.
type Validator interface {
	Validate(ctx context.Context, r RUT) error
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(ctx context.Context, r RUT) error

func (f ValidatorFunc) Validate(ctx context.Context, r RUT) error {
	return f(ctx, r)
}

// ChecksumValidator rejects a RUT whose verifier does not match Checksum.
type ChecksumValidator struct{}

func (ChecksumValidator) Validate(_ context.Context, r RUT) error {
	if r.IsZero() {
		return NewInvalidError(r, "rut is empty")
	}
	if expected := Checksum(r.correlative); expected != r.verifier {
		return NewInvalidError(r, fmt.Sprintf("verifier %c does not match checksum %c", r.verifier, expected))
	}
	return nil
}

// Chain runs validators in insertion order and stops at the first failure.
// Build it once, then share it; Append must not race with Validate.
type Chain struct {
	validators []Validator
}

func NewChain(validators ...Validator) *Chain {
	c := &Chain{validators: make([]Validator, 0, len(validators))}
	for _, v := range validators {
		c.Append(v)
	}
	return c
}

// Append adds v to the end of the chain and returns the chain for fluent use.
// Nil validators are ignored.
func (c *Chain) Append(v Validator) *Chain {
	if v != nil {
		c.validators = append(c.validators, v)
	}
	return c
}

func (c *Chain) Len() int {
	return len(c.validators)
}

// Validate returns the first validator error unchanged. An empty chain accepts.
// ctx is handed to every validator; the chain itself never fails on it.
func (c *Chain) Validate(ctx context.Context, r RUT) error {
	for _, v := range c.validators {
		if err := v.Validate(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// Validate runs validators against r as a one-off chain.
func Validate(ctx context.Context, r RUT, validators ...Validator) error {
	return NewChain(validators...).Validate(ctx, r)
}
