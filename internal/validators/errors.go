package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyIdentity       = errors.New("identity is required")
	ErrIdentityTooLong     = errors.New("identity is too long")
	ErrMalformedIdentity   = errors.New("identity must be an email address")
	ErrEmptySecret         = errors.New("secret is required")
	ErrSecretTooLong       = errors.New("secret is too long")
	ErrWorkingDataTooLarge = errors.New("working data is too large")
)
