package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventra/eventra-backend/internal/auth"
	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/repository"
)

func newAuthService(hosters *fakeHosterStore, admins *fakeAdminStore) *AuthService {
	signer := auth.NewSigner("test-secret", time.Hour)
	return NewAuthService(hosters, admins, signer, 12.5)
}

func registerRequest() model.RegisterHosterRequest {
	return model.RegisterHosterRequest{
		CompanyName:   "Night Owl Events",
		ContactPerson: "Sam Owner",
		Email:         "Owner@NightOwl.example",
		Phone:         "+491701234567",
		Password:      "correct horse",
	}
}

func TestRegisterHoster(t *testing.T) {
	hosters := newFakeHosterStore()
	svc := newAuthService(hosters, newFakeAdminStore())

	h, err := svc.RegisterHoster(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, model.HosterPending, h.Status)
	assert.Equal(t, "owner@nightowl.example", h.Email)
	assert.Equal(t, 12.5, h.CommissionRate)
	assert.NotEqual(t, "correct horse", h.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte("correct horse")))
}

func TestRegisterHosterValidation(t *testing.T) {
	svc := newAuthService(newFakeHosterStore(), newFakeAdminStore())
	ctx := context.Background()

	req := registerRequest()
	req.Email = "not-an-email"
	_, err := svc.RegisterHoster(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	req = registerRequest()
	req.Password = "short"
	_, err = svc.RegisterHoster(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterHosterEmailTaken(t *testing.T) {
	svc := newAuthService(newFakeHosterStore(), newFakeAdminStore())
	ctx := context.Background()

	_, err := svc.RegisterHoster(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.RegisterHoster(ctx, registerRequest())
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestLoginHoster(t *testing.T) {
	hosters := newFakeHosterStore()
	svc := newAuthService(hosters, newFakeAdminStore())
	ctx := context.Background()

	h, err := svc.RegisterHoster(ctx, registerRequest())
	require.NoError(t, err)

	login := model.LoginRequest{Email: "owner@nightowl.example", Password: "correct horse"}

	// Pending hosters cannot log in, even with correct credentials.
	_, _, err = svc.LoginHoster(ctx, login)
	assert.ErrorIs(t, err, ErrAccountInactive)

	h.Status = model.HosterApproved
	require.NoError(t, hosters.Update(ctx, h))

	token, got, err := svc.LoginHoster(ctx, login)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, h.ID, got.ID)

	_, _, err = svc.LoginHoster(ctx, model.LoginRequest{Email: login.Email, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.LoginHoster(ctx, model.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureDefaultAdminAndLogin(t *testing.T) {
	admins := newFakeAdminStore()
	svc := newAuthService(newFakeHosterStore(), admins)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "admin@eventra.com", "admin123"))
	// Idempotent on restart.
	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "admin@eventra.com", "admin123"))

	token, admin, err := svc.LoginAdmin(ctx, model.LoginRequest{
		Email: "admin@eventra.com", Password: "admin123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, auth.RoleSuperAdmin, admin.Role)

	_, _, err = svc.LoginAdmin(ctx, model.LoginRequest{
		Email: "admin@eventra.com", Password: "nope",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
