// Package auth issues and verifies the bearer tokens operators present to
// the admin endpoints.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RoleOperator is the only role accepted on the admin endpoints.
const RoleOperator = "operator"

// ErrNotOperator is returned for a valid token that does not carry the
// operator role.
var ErrNotOperator = errors.New("token does not grant operator access")

// Tokens signs and verifies HS256 operator tokens.
type Tokens struct {
	secret []byte
	issuer string
}

// NewTokens creates a token signer/verifier.
// secret must be at least 32 characters for HS256 security.
func NewTokens(secret, issuer string) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		issuer: issuer,
	}
}

type operatorClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Issue creates a signed operator token for operatorID valid for ttl.
func (t *Tokens) Issue(operatorID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := operatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operatorID.String(),
			Issuer:    t.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: RoleOperator,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses token and returns the operator id it was issued to.
func (t *Tokens) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, fmt.Errorf("token is empty")
	}

	parsed, err := jwt.ParseWithClaims(token, &operatorClaims{},
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*operatorClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, fmt.Errorf("invalid token claims")
	}
	if claims.Role != RoleOperator {
		return uuid.Nil, ErrNotOperator
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject UUID: %w", err)
	}
	return id, nil
}
