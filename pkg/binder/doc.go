// Package binder binds HTTP form bodies and query strings into structs.
//
// It is the form-binding adapter for the rut package: any field whose type
// implements encoding.TextUnmarshaler is decoded with UnmarshalText, so
// rut.RUT, *rut.RUT and []rut.RUT fields accept every layout rut.Parse
// understands ("12.345.678-5", "12345678-5", "123456785").
//
// # Usage
//
//	type LookupRequest struct {
//	    RUT  rut.RUT   `query:"rut"`
//	    More []rut.RUT `query:"more"`
//	}
//
//	var req LookupRequest
//	if err := binder.Query()(r, &req); err != nil {
//	    // ErrFailedToParseQuery, and rut.ErrMalformedInput for bad RUTs
//	}
//
// Binding only parses. Pair it with the validator package (ValidRUT,
// RUTWith) or a rut.Chain to check verifiers and registry status.
//
// # Error Handling
//
//   - ErrMissingContentType   – Form called without a Content-Type header
//   - ErrUnsupportedMediaType – Form called with a non-urlencoded body
//   - ErrFailedToParseForm    – malformed body or field value
//   - ErrFailedToParseQuery   – malformed query field value
package binder
