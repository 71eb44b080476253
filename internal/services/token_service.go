package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"

	"tokobaju/internal/apperrors"
)

// TokenService issues and verifies signed session tokens. A token carries
// only the subject id; sessions are stateless and there is no revocation
// list, expiry is the only termination mechanism.
type TokenService struct {
	secret  []byte
	expires time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string, expires time.Duration) *TokenService {
	return &TokenService{
		secret:  []byte(secret),
		expires: expires,
	}
}

// Issue produces a signed, expiring HS256 token for the subject.
func (s *TokenService) Issue(subjectID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  subjectID,
		"exp": now.Add(s.expires).Unix(),
		"iat": now.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and returns the subject id. Invalid signature,
// unexpected algorithm, expiry and malformed input all fail the same way.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		log.Printf("Token verification failed: %v", err)
		return "", apperrors.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", apperrors.ErrUnauthorized
	}
	subjectID, ok := claims["id"].(string)
	if !ok || subjectID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return subjectID, nil
}
