package utils

import (
	"errors"
	"time"

	"helpnest/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired signals that a token was once valid but its lifetime ran out.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid covers malformed tokens and bad signatures.
	ErrTokenInvalid = errors.New("token is not valid")
)

// TokenLifetime is how long an issued bearer token stays valid. There is no
// revocation list; a token lives its full lifetime.
const TokenLifetime = 7 * 24 * time.Hour

// AuthClaims is the payload embedded in every bearer token. Subject carries
// the account's internal id.
type AuthClaims struct {
	PublicID string `json:"public_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT carrying the account's internal id,
// public id and role.
func GenerateToken(accountID, publicID, role string) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		PublicID: publicID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidateToken parses and validates a token string and returns its claims.
// Expired tokens and tampered tokens fail with distinct errors so callers can
// tell "log in again" apart from "bad token".
func ValidateToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
