package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateLedgerToken signs an HS256 token for userID scoped to the given organizations.
// It backs the development token command and tests; the server never issues tokens.
func GenerateLedgerToken(userID string, organizations []int64, secret, issuer string, expiry time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("token subject is required")
	}
	now := time.Now()
	claims := LedgerClaims{
		Organizations: organizations,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
