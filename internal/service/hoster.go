package service

import (
	"context"
	"fmt"

	"github.com/eventra/eventra-backend/internal/logger"
	"github.com/eventra/eventra-backend/internal/model"
)

// HosterStore is the persistence surface HosterService needs.
type HosterStore interface {
	GetByID(ctx context.Context, id string) (*model.Hoster, error)
	Update(ctx context.Context, h *model.Hoster) error
	List(ctx context.Context, status model.HosterStatus, search string, page, limit int) ([]model.Hoster, int, error)
}

// HosterService covers admin moderation of hoster accounts.
type HosterService struct {
	hosters HosterStore
}

// NewHosterService constructs a HosterService.
func NewHosterService(hosters HosterStore) *HosterService {
	return &HosterService{hosters: hosters}
}

// Get returns a hoster profile.
func (s *HosterService) Get(ctx context.Context, id string) (*model.Hoster, error) {
	return s.hosters.GetByID(ctx, id)
}

// List returns hosters filtered by status and search text.
func (s *HosterService) List(ctx context.Context, status model.HosterStatus, search string, page, limit int) ([]model.Hoster, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown hoster status %q", ErrValidation, status)
	}
	return s.hosters.List(ctx, status, search, page, limit)
}

// SetStatus moves a hoster through the approval lifecycle.
func (s *HosterService) SetStatus(ctx context.Context, id string, status model.HosterStatus, adminNotes string) (*model.Hoster, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown hoster status %q", ErrValidation, status)
	}
	h, err := s.hosters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h.Status = status
	if adminNotes != "" {
		h.AdminNotes = adminNotes
	}
	if err := s.hosters.Update(ctx, h); err != nil {
		return nil, err
	}
	logger.Log.Info("hoster status changed", "hoster_id", id, "status", status)
	return h, nil
}

// SetCommissionRate updates a hoster's negotiated rate. Existing events and
// reservations keep their snapshots; only future snapshots pick this up.
func (s *HosterService) SetCommissionRate(ctx context.Context, id string, rate float64) (*model.Hoster, error) {
	if rate < 0 || rate > 100 {
		return nil, fmt.Errorf("%w: commission rate must be between 0 and 100", ErrValidation)
	}
	h, err := s.hosters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h.CommissionRate = rate
	if err := s.hosters.Update(ctx, h); err != nil {
		return nil, err
	}
	logger.Log.Info("hoster commission updated", "hoster_id", id, "rate", rate)
	return h, nil
}
