package crypto

import "errors"

var (
	// ErrHashing is returned when a hash cannot be produced, e.g. the system
	// random source fails.
	ErrHashing = errors.New("error hashing secret")

	// ErrUnknownHasher is returned by [NewCredentialVerifier] for an
	// unsupported algorithm name.
	ErrUnknownHasher = errors.New("unknown password hasher")

	errMalformedHash = errors.New("malformed hash")
)
