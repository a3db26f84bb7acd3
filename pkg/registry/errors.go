package registry

import "errors"

var (
	// ErrNotFound means the registry answered and has no record for the RUT.
	ErrNotFound = errors.New("rut not found in registry")

	// ErrRegistryUnavailable marks transport, timeout and backend failures.
	// A Validator never treats it as acceptance.
	ErrRegistryUnavailable = errors.New("rut registry unavailable")

	// ErrBadResponse means the registry answered with a payload that cannot be decoded.
	ErrBadResponse = errors.New("bad registry response")

	// ErrRateLimited means the registry asked the client to slow down.
	ErrRateLimited = errors.New("rut registry rate limited")
)
