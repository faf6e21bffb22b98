// Package auth issues and verifies the bearer tokens used by hoster and
// admin endpoints.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Account roles carried in token claims.
const (
	RoleHoster     = "hoster"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// ErrInvalidToken is returned for malformed, expired, or mis-signed tokens.
var ErrInvalidToken = errors.New("invalid authentication token")

// Claims are the JWT claims attached to every issued token.
type Claims struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims belong to a platform operator.
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}

// Signer issues and parses HS256 tokens with a shared secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner constructs a Signer.
func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl}
}

// Sign issues a token for the given account.
func (s *Signer) Sign(accountID, role, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: accountID,
		Role:      role,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token string and returns its claims.
func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
