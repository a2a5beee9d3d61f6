// Package auth provides the session-token and password-hashing
// capabilities consumed by the application core through ports.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flexmobile/shop/internal/infrastructure/config"
	"github.com/flexmobile/shop/internal/ports"
)

// sessionClaims carries the authenticated user binding
type sessionClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// JWTSessionManager implements the SessionManager port with signed
// HS256 tokens. Expiry is carried in the token itself, so a session
// returns to anonymous when its TTL elapses without any server state.
type JWTSessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSessionManager creates a JWT-backed session manager
func NewSessionManager(cfg config.SessionConfig) ports.SessionManager {
	return &JWTSessionManager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
	}
}

func (m *JWTSessionManager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (m *JWTSessionManager) Verify(tokenString string) (string, error) {
	t, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return "", err
	}

	claims, ok := t.Claims.(*sessionClaims)
	if !ok || !t.Valid || claims.UserID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.UserID, nil
}
