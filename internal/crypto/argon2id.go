// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2idPrefix = "$argon2id$"

// argon2idVerifier is the default [CredentialVerifier]. Hashes are encoded as
//
//	$argon2id$v=19$m=<memory KiB>,t=<time>,p=<threads>$<salt>$<key>
//
// with raw standard base64 salt and key, so the parameters used at
// registration travel with the hash and later tuning changes do not lock out
// existing accounts.
type argon2idVerifier struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      int

	random io.Reader
}

// NewArgon2idVerifier constructs a [CredentialVerifier] with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//   - salt length: 16 bytes
func NewArgon2idVerifier() CredentialVerifier {
	return &argon2idVerifier{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
		saltLen:      16,
		random:       rand.Reader,
	}
}

func (a *argon2idVerifier) Hash(secret string) (string, error) {
	salt := make([]byte, a.saltLen)
	if _, err := io.ReadFull(a.random, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashing, err)
	}

	key := argon2.IDKey([]byte(secret), salt, a.argonTime, a.argonMemory, a.argonThreads, a.argonKeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		a.argonMemory, a.argonTime, a.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (a *argon2idVerifier) Verify(secret, hash string) bool {
	params, salt, key, err := decodeArgon2idHash(hash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(secret), salt, params.time, params.memory, params.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(candidate, key) == 1
}

type argon2idParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

func decodeArgon2idHash(hash string) (argon2idParams, []byte, []byte, error) {
	var params argon2idParams

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, errMalformedHash
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, errMalformedHash
	}
	if params.memory == 0 || params.time == 0 || params.threads == 0 {
		return params, nil, nil, errMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, errMalformedHash
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, errMalformedHash
	}

	return params, salt, key, nil
}
