package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventra/eventra-backend/internal/auth"
	"github.com/eventra/eventra-backend/internal/logger"
	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/repository"
)

// HosterAccounts is the persistence surface AuthService needs for hosters.
type HosterAccounts interface {
	Create(ctx context.Context, h *model.Hoster) error
	GetByEmail(ctx context.Context, email string) (*model.Hoster, error)
	Update(ctx context.Context, h *model.Hoster) error
}

// AdminAccounts is the persistence surface AuthService needs for admins.
type AdminAccounts interface {
	Create(ctx context.Context, a *model.Admin) error
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	TouchLogin(ctx context.Context, id string, at time.Time) error
}

// AuthService handles registration, login, and token issuance.
type AuthService struct {
	hosters HosterAccounts
	admins  AdminAccounts
	signer  *auth.Signer

	defaultCommissionRate float64
}

// NewAuthService constructs an AuthService.
func NewAuthService(hosters HosterAccounts, admins AdminAccounts, signer *auth.Signer, defaultCommissionRate float64) *AuthService {
	return &AuthService{
		hosters:               hosters,
		admins:                admins,
		signer:                signer,
		defaultCommissionRate: defaultCommissionRate,
	}
}

// RegisterHoster creates a pending hoster account. New hosters cannot log in
// until an admin approves them.
func (s *AuthService) RegisterHoster(ctx context.Context, req model.RegisterHosterRequest) (*model.Hoster, error) {
	if strings.TrimSpace(req.CompanyName) == "" {
		return nil, fmt.Errorf("%w: company_name is required", ErrValidation)
	}
	if strings.TrimSpace(req.ContactPerson) == "" {
		return nil, fmt.Errorf("%w: contact_person is required", ErrValidation)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	h := &model.Hoster{
		ID:             uuid.NewString(),
		CompanyName:    strings.TrimSpace(req.CompanyName),
		ContactPerson:  strings.TrimSpace(req.ContactPerson),
		Email:          email,
		Phone:          strings.TrimSpace(req.Phone),
		WhatsAppNumber: strings.TrimSpace(req.WhatsAppNumber),
		PasswordHash:   string(hash),
		Website:        strings.TrimSpace(req.Website),
		Status:         model.HosterPending,
		CommissionRate: s.defaultCommissionRate,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.hosters.Create(ctx, h); err != nil {
		return nil, err
	}

	logger.Log.Info("hoster registered", "hoster_id", h.ID, "email", h.Email)
	return h, nil
}

// LoginHoster verifies credentials and returns a signed token. Only approved,
// active hosters may log in.
func (s *AuthService) LoginHoster(ctx context.Context, req model.LoginRequest) (string, *model.Hoster, error) {
	h, err := s.hosters.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	if h.Status != model.HosterApproved || !h.IsActive {
		return "", nil, ErrAccountInactive
	}

	token, err := s.signer.Sign(h.ID, auth.RoleHoster, h.Email)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	now := time.Now().UTC()
	h.LastLogin = &now
	if err := s.hosters.Update(ctx, h); err != nil {
		logger.Log.Warn("record hoster login failed", "hoster_id", h.ID, "error", err)
	}
	return token, h, nil
}

// LoginAdmin verifies admin credentials and returns a signed token.
func (s *AuthService) LoginAdmin(ctx context.Context, req model.LoginRequest) (string, *model.Admin, error) {
	a, err := s.admins.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !a.IsActive {
		return "", nil, ErrAccountInactive
	}

	role := auth.RoleAdmin
	if a.Role == auth.RoleSuperAdmin {
		role = auth.RoleSuperAdmin
	}
	token, err := s.signer.Sign(a.ID, role, a.Email)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	if err := s.admins.TouchLogin(ctx, a.ID, time.Now().UTC()); err != nil {
		logger.Log.Warn("record admin login failed", "admin_id", a.ID, "error", err)
	}
	return token, a, nil
}

// EnsureDefaultAdmin seeds the bootstrap superadmin account on first start.
// An existing account with the same email is left untouched.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, email, password string) error {
	_, err := s.admins.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	a := &model.Admin{
		ID:           uuid.NewString(),
		Username:     "admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         auth.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.admins.Create(ctx, a); err != nil {
		return err
	}
	logger.Log.Info("default admin created", "email", email)
	return nil
}
