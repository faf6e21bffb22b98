package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	s := NewSigner("secret", time.Hour)

	token, err := s.Sign("acc-1", RoleHoster, "owner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, RoleHoster, claims.Role)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.False(t, claims.IsAdmin())
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewSigner("secret-a", time.Hour).Sign("acc-1", RoleAdmin, "a@b.c")
	require.NoError(t, err)

	_, err = NewSigner("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	s := NewSigner("secret", -time.Minute)
	token, err := s.Sign("acc-1", RoleHoster, "a@b.c")
	require.NoError(t, err)

	_, err = s.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewSigner("secret", time.Hour).Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&Claims{Role: RoleAdmin}).IsAdmin())
	assert.True(t, (&Claims{Role: RoleSuperAdmin}).IsAdmin())
	assert.False(t, (&Claims{Role: RoleHoster}).IsAdmin())
}
