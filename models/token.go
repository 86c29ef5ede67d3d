package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// RegistrationToken wraps the JWT handed to a device when it pairs a test.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. The "sub" claim holds the server-side
// registration ID.
type RegistrationToken struct {
	// Token is the underlying JWT. Only the compact form leaves the server.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// RegistrationID is a cached copy of the "sub" claim.
	RegistrationID string `json:"-"`
}

// GetRegistrationID returns the "sub" claim. It fails when the claim is
// missing or empty.
func (t *RegistrationToken) GetRegistrationID() (string, error) {
	id, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting registration ID from token: %w", err)
	}
	if id == "" {
		return "", fmt.Errorf("empty registration ID in token")
	}

	return id, nil
}

// String returns the compact JWS serialization of the token.
func (t *RegistrationToken) String() string {
	return t.SignedString
}
