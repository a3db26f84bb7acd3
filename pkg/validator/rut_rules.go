package validator

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// WellFormedRUT validates that value can be read as a RUT. The verifier is not checked.
func WellFormedRUT(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := rut.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a RUT like 12.345.678-5",
			TranslationKey: "validation.rut_format",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidRUT validates that value is a well-formed RUT whose verifier matches
// its correlative.
func ValidRUT(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			r, err := rut.Parse(value)
			return err == nil && r.Valid()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid RUT",
			TranslationKey: "validation.rut",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredRUT rejects the zero RUT, typically left by a binder on empty input.
func RequiredRUT(field string, value rut.RUT) Rule {
	return Rule{
		Check: func() bool {
			return !value.IsZero()
		},
		Error: ValidationError{
			Field:          field,
			Message:        ErrFieldRequired.Error(),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RUTWith runs v against value. The validator's rejection reason is exposed as
// the "reason" translation value once the rule has failed. Transport failures
// (anything that is not rut.ErrInvalidIdentity) fail the rule as well, with
// reason "unavailable".
func RUTWith(ctx context.Context, field string, value rut.RUT, v rut.Validator) Rule {
	values := map[string]any{
		"field": field,
	}
	return Rule{
		Check: func() bool {
			if v == nil {
				return true
			}
			err := v.Validate(ctx, value)
			if err == nil {
				return true
			}
			if invalid, ok := rut.AsInvalidError(err); ok {
				values["reason"] = invalid.Reason
			} else if errors.Is(err, rut.ErrInvalidIdentity) {
				values["reason"] = err.Error()
			} else {
				values["reason"] = "unavailable"
			}
			return false
		},
		Error: ValidationError{
			Field:             field,
			Message:           "RUT was rejected",
			TranslationKey:    "validation.rut_rejected",
			TranslationValues: values,
		},
	}
}
