// Package rut implements the Chilean national identifier (RUT) as an
// immutable value type: parsing free-form input, computing and verifying the
// modulus-11 verifier digit, formatting into canonical layouts and running a
// composable, fail-fast validation protocol.
//
// # Architecture
//
// The package is split by concern:
//
//   - normalize.go  – Normalize strips punctuation and splits body and verifier
//   - checksum.go   – Checksum computes the modulus-11 verifier
//   - rut.go        – the RUT value and its constructors
//   - validator.go  – Validator, ValidatorFunc, ChecksumValidator and Chain
//   - format.go     – Mode and Format for Clear/Readable/Hyphened/Hidden output
//   - correlative.go – VerifierFor, FromCorrelative and the random Generator
//   - encoding.go   – text, JSON, database/sql and slog integration
//
// Everything except Validator implementations that perform I/O is pure and
// safe for concurrent use. A RUT never changes after construction.
//
// # Usage
//
//	r, err := rut.ParseWith(ctx, "12.345.678-5", rut.ChecksumValidator{})
//	if err != nil {
//	    if errors.Is(err, rut.ErrMalformedInput) {
//	        // input could not be read as a RUT
//	    }
//	    if errors.Is(err, rut.ErrInvalidIdentity) {
//	        // well-formed, but rejected by a validator
//	    }
//	}
//	fmt.Println(r.Format(rut.Hidden)) // 12.***.***-5
//
// Validators compose into a chain. Order matters: cheap algorithmic checks
// should come before validators that reach a remote registry.
//
//	chain := rut.NewChain(rut.ChecksumValidator{}).Append(registryValidator)
//	err := chain.Validate(ctx, r)
//
// # Error Handling
//
// Two error kinds are exposed, both usable with errors.Is:
//
//   - ErrMalformedInput  – raw input cannot be read as a RUT (*ParseError)
//   - ErrInvalidIdentity – a well-formed RUT was rejected (*InvalidError)
//
// A nil error is the only success signal. A Chain returns the first failure
// unchanged and never aggregates.
package rut
