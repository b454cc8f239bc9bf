package utils

import (
	"time"

	"clinicportal-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT wraps a session ID into the signed token handed to the
// browser. The clinic backend bearer token itself never leaves the server.
func GenerateJWT(sessionID, secret string, expTime time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expTime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

// ParseJWT returns the session ID carried by a portal token.
func ParseJWT(tokenString, secret string) (string, error) {
	claims := new(jwt.RegisteredClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	return claims.Subject, nil
}
