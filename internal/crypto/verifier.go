package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/config"
)

// NewCredentialVerifier picks the verifier named by cfg.PasswordHasher.
func NewCredentialVerifier(cfg config.App) (CredentialVerifier, error) {
	switch cfg.PasswordHasher {
	case config.HasherArgon2id, "":
		return NewArgon2idVerifier(), nil
	case config.HasherBcrypt:
		return NewBcryptVerifier(cfg.BcryptCost), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, cfg.PasswordHasher)
	}
}
