package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// SessionSigner issues and validates the anonymous visitor session tokens.
// The token only names a session; it carries no identity.
type SessionSigner struct {
	secret []byte
	expiry time.Duration
}

func NewSessionSigner(secret string, expiry time.Duration) *SessionSigner {
	return &SessionSigner{secret: []byte(secret), expiry: expiry}
}

func (s *SessionSigner) Sign(sessionID string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("session secret not set")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	})

	return token.SignedString(s.secret)
}

// Validate returns the session ID carried by tokenString.
func (s *SessionSigner) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
