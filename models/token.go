package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT with convenience accessors for authentication
// flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// The subject claim carries the account identity.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the account identity extracted from the "sub" claim.
	Identity string `json:"-"`
}

// GetIdentity extracts the account identity from the token's subject claim.
func (t *Token) GetIdentity() (string, error) {
	identity, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting identity from token: %w", err)
	}
	if identity == "" {
		return "", fmt.Errorf("error extracting identity from token: empty subject")
	}

	return identity, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
