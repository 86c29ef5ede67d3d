package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by [GenerateRegistrationToken] when a
// required argument is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating registration token")

// GenerateRegistrationToken creates an HS256-signed JWT for a paired test.
//
// Claims:
//   - Issuer    (iss): issuer
//   - Subject   (sub): registrationID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateRegistrationToken("verification", regID, 720*time.Hour, "secret")
func GenerateRegistrationToken(issuer, registrationID string, tokenDuration time.Duration, signKey string) (models.RegistrationToken, error) {
	if issuer == "" || registrationID == "" || tokenDuration <= 0 || signKey == "" {
		return models.RegistrationToken{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   registrationID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.RegistrationToken{}, fmt.Errorf("error occurred during signing registration token: %w", err)
	}

	return models.RegistrationToken{
		Token:          token,
		SignedString:   signed,
		RegistrationID: registrationID,
	}, nil
}

// ValidateRegistrationToken verifies the signature, issuer and expiry of
// tokenString and returns the token with RegistrationID filled from "sub".
// Only HS256 is accepted.
func ValidateRegistrationToken(tokenString, signKey, issuer string) (models.RegistrationToken, error) {
	var parsed models.RegistrationToken

	token, err := jwt.ParseWithClaims(strings.TrimSpace(tokenString), &parsed, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.RegistrationToken{}, fmt.Errorf("error occurred validating registration token: %w", err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString

	id, err := parsed.GetRegistrationID()
	if err != nil {
		return models.RegistrationToken{}, err
	}
	parsed.RegistrationID = id

	return parsed, nil
}
