// Package validator provides declarative, translation-friendly validation
// rules for RUT input, built on the rut package.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Apply evaluates every rule and aggregates failures into a
// ValidationErrors slice that implements error; ApplyFirst stops at the first
// failing rule, mirroring rut.Chain, which keeps expensive rules (registry
// lookups) from running on input that already failed a cheap one.
//
// # Usage
//
//	err := validator.ApplyFirst(
//	    validator.ValidRUT("rut", form.RUT),
//	    validator.RUTWith(ctx, "rut", parsed, registryValidator),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
//
// # Rules
//
//   - WellFormedRUT – input can be parsed, verifier not checked
//   - ValidRUT      – input parses and the verifier matches the checksum
//   - RequiredRUT   – a bound rut.RUT is not the zero value
//   - RUTWith       – runs any rut.Validator, e.g. a rut.Chain
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is and can be
// extracted with ExtractValidationErrors. Translation keys use the
// "validation." prefix.
package validator
