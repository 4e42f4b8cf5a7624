package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/go-account-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldIdentity checks the identity is present.
	FieldIdentity = "identity"

	// FieldIdentityLength checks the identity fits MaxIdentityLen.
	FieldIdentityLength = "identity_length"

	// FieldIdentityFormat checks the identity parses as a bare email address.
	FieldIdentityFormat = "identity_format"

	// FieldSecret checks the secret is present.
	FieldSecret = "secret"

	// FieldSecretLength checks the secret fits MaxSecretLen. Only new
	// secrets are capped; a long secret presented for an existing account
	// simply fails verification.
	FieldSecretLength = "secret_length"

	// FieldWorkingData checks the working data size.
	FieldWorkingData = "working_data"
)

const (
	// MaxIdentityLen is the longest identity accepted, in bytes (RFC 5321
	// path limit).
	MaxIdentityLen = 320

	// MaxSecretLen is the longest secret accepted at registration, in bytes.
	// bcrypt cannot hash more, so the cap applies to every hasher.
	MaxSecretLen = 72

	// MaxWorkingDataLen bounds a single working data blob.
	MaxWorkingDataLen = 1 << 20
)

// AccountValidator validates account requests before they reach storage.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialsRequest:
		return v.validateCredentials(ctx, value, fields...)
	case *models.CredentialsRequest:
		return v.validateCredentials(ctx, *value, fields...)

	case models.SaveDataRequest:
		return v.validateSaveData(ctx, value, fields...)
	case *models.SaveDataRequest:
		return v.validateSaveData(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateCredentials(ctx context.Context, request models.CredentialsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentity, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			if request.Identity == "" {
				return ErrEmptyIdentity
			}
		case FieldIdentityLength:
			if len(request.Identity) > MaxIdentityLen {
				return ErrIdentityTooLong
			}
		case FieldIdentityFormat:
			if err := validateIdentityFormat(request.Identity); err != nil {
				return err
			}
		case FieldSecret:
			if request.Secret == "" {
				return ErrEmptySecret
			}
		case FieldSecretLength:
			if len(request.Secret) > MaxSecretLen {
				return ErrSecretTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateSaveData(ctx context.Context, request models.SaveDataRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentity, FieldIdentityLength, FieldWorkingData}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			if request.Identity == "" {
				return ErrEmptyIdentity
			}
		case FieldIdentityLength:
			if len(request.Identity) > MaxIdentityLen {
				return ErrIdentityTooLong
			}
		case FieldWorkingData:
			if len(request.WorkingData) > MaxWorkingDataLen {
				return ErrWorkingDataTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateIdentityFormat accepts only a bare address: "Name <a@x.com>" parses
// as an email but is not one.
func validateIdentityFormat(identity string) error {
	addr, err := mail.ParseAddress(identity)
	if err != nil || addr.Address != identity {
		return ErrMalformedIdentity
	}
	return nil
}
