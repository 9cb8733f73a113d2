package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the bearer token issued by the relay after a completed SRP
// handshake.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in HTTP headers or persisted in the session record.
// Handle is a cached copy of the "sub" claim; the client only ever parses
// tokens, it never signs them.
type Token struct {
	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// Handle is the account handle extracted from the "sub" claim.
	Handle string `json:"-"`
}

// GetHandle extracts the account handle from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetHandle() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting handle from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("token subject is empty")
	}

	return sub, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
