// Package auth validates the bearer tokens presented to the API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

var errEmptyToken = errors.New("token is empty")

// JWTManager signs and validates HS256 access tokens whose subject is the
// user ID. Signing is used by the seeder and by tests only.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	leeway    time.Duration
	now       func() time.Time
	parser    *jwt.Parser
}

// Option tunes a JWTManager.
type Option func(*JWTManager)

// WithLeeway tolerates clock skew when checking exp/iat.
func WithLeeway(d time.Duration) Option {
	return func(m *JWTManager) { m.leeway = d }
}

// WithClock replaces time.Now for both signing and validation.
func WithClock(now func() time.Time) Option {
	return func(m *JWTManager) { m.now = now }
}

// NewJWTManager creates a manager for the given secret and issuer.
// Config validation guarantees the secret is at least 32 characters.
func NewJWTManager(secret, issuer string, accessTTL time.Duration, opts ...Option) *JWTManager {
	m := &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(m.leeway),
		jwt.WithTimeFunc(m.now),
	)
	return m
}

// GenerateAccessToken signs a token for userID valid for the access TTL.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID.String(),
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken returns the user ID the token was issued for.
// Errors wrap the jwt/v5 sentinels (jwt.ErrTokenExpired and friends).
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, errEmptyToken
	}

	var claims jwt.RegisteredClaims
	if _, err := m.parser.ParseWithClaims(tokenString, &claims, m.key); err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: subject %q is not a user id", jwt.ErrTokenInvalidSubject, claims.Subject)
	}
	return userID, nil
}

func (m *JWTManager) key(*jwt.Token) (any, error) {
	return m.secret, nil
}

// ValidateToken adapts ValidateAccessToken for the auth middleware. Every
// failure wraps domain.ErrUnauthorized.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := m.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return userID, nil
}
