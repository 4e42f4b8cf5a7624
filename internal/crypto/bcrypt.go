package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type bcryptVerifier struct {
	cost int
}

// NewBcryptVerifier returns a bcrypt-backed [CredentialVerifier]. Secrets
// longer than 72 bytes fail to hash, so callers cap secret length first.
func NewBcryptVerifier(cost int) CredentialVerifier {
	return &bcryptVerifier{cost: cost}
}

func (b *bcryptVerifier) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), b.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashing, err)
	}
	return string(hashed), nil
}

// Verify relies on bcrypt.CompareHashAndPassword, which compares in constant
// time.
func (b *bcryptVerifier) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
