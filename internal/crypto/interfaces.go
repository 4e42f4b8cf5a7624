package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// CredentialVerifier hashes account secrets and checks them against stored
// hashes. It holds no state besides its tuning parameters.
type CredentialVerifier interface {
	// Hash returns an encoded salted hash of secret. Two calls with the same
	// secret give different outputs that both verify. Fails with ErrHashing
	// only on internal failure, never because of the secret's shape.
	Hash(secret string) (string, error)

	// Verify reports whether secret produced hash. The comparison runs in
	// constant time with respect to the hash bytes. A malformed hash is
	// reported as a mismatch.
	Verify(secret, hash string) bool
}
