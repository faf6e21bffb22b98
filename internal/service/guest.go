package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eventra/eventra-backend/internal/logger"
	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/notify"
	"github.com/eventra/eventra-backend/internal/repository"
)

// GuestStore is the persistence surface GuestService needs.
type GuestStore interface {
	Create(ctx context.Context, g *model.GuestEntry) error
	GetByID(ctx context.Context, id string) (*model.GuestEntry, error)
	Update(ctx context.Context, g *model.GuestEntry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f model.GuestFilter) ([]model.GuestEntry, int, error)
	StatsByEvent(ctx context.Context, eventID string) (*model.GuestStats, error)
}

// EventLookup fetches events for eligibility checks.
type EventLookup interface {
	GetByID(ctx context.Context, id string) (*model.Event, error)
}

// AdmissionResult is the response to a guest list registration.
type AdmissionResult struct {
	Guest        *model.GuestEntry `json:"guest"`
	WhatsAppLink string            `json:"whatsapp_link,omitempty"`
}

// GuestService manages event guest lists: admission, RSVP updates, and door
// check-in.
type GuestService struct {
	guests  GuestStore
	events  EventLookup
	hosters HosterLookup
}

// NewGuestService constructs a GuestService.
func NewGuestService(guests GuestStore, events EventLookup, hosters HosterLookup) *GuestService {
	return &GuestService{guests: guests, events: events, hosters: hosters}
}

// Admit registers a party on the event's guest list. The group size is the
// primary guest plus companions and is capped; a phone number may appear at
// most once per event.
func (s *GuestService) Admit(ctx context.Context, req model.AdmitGuestRequest, addedBy string) (*AdmissionResult, error) {
	if strings.TrimSpace(req.GuestName) == "" {
		return nil, fmt.Errorf("%w: guest_name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}
	groupSize := 1 + len(req.Companions)
	if groupSize > model.MaxGroupSize {
		return nil, fmt.Errorf("%w: group size %d exceeds the maximum of %d",
			ErrValidation, groupSize, model.MaxGroupSize)
	}
	for _, c := range req.Companions {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("%w: every companion needs a name", ErrValidation)
		}
	}

	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !event.Status.Bookable() {
		return nil, repository.ErrNotBookable
	}

	if addedBy == "" {
		addedBy = "public"
	}
	g := &model.GuestEntry{
		ID:         uuid.NewString(),
		EventID:    event.ID,
		GuestName:  strings.TrimSpace(req.GuestName),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Companions: req.Companions,
		GroupSize:  groupSize,
		RSVPStatus: model.RSVPConfirmed,
		Notes:      req.Notes,
		AddedBy:    addedBy,
		AddedAt:    time.Now().UTC(),
	}
	if err := s.guests.Create(ctx, g); err != nil {
		return nil, err
	}

	result := &AdmissionResult{Guest: g}
	if hoster, err := s.hosters.GetByID(ctx, event.HosterID); err == nil {
		result.WhatsAppLink = notify.GuestLink(hoster.WhatsAppNumber, g, event)
	}

	logger.Log.Info("guest admitted", "guest_id", g.ID, "event_id", event.ID, "group_size", groupSize)
	return result, nil
}

// Get returns a guest entry by ID.
func (s *GuestService) Get(ctx context.Context, id string) (*model.GuestEntry, error) {
	return s.guests.GetByID(ctx, id)
}

// Update applies a partial update to a guest entry.
func (s *GuestService) Update(ctx context.Context, id string, req model.UpdateGuestRequest) (*model.GuestEntry, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.GuestName != nil {
		if strings.TrimSpace(*req.GuestName) == "" {
			return nil, fmt.Errorf("%w: guest_name must not be empty", ErrValidation)
		}
		g.GuestName = strings.TrimSpace(*req.GuestName)
	}
	if req.Email != nil {
		g.Email = strings.TrimSpace(*req.Email)
	}
	if req.RSVPStatus != nil {
		if !req.RSVPStatus.Valid() {
			return nil, fmt.Errorf("%w: unknown rsvp status %q", ErrValidation, *req.RSVPStatus)
		}
		g.RSVPStatus = *req.RSVPStatus
	}
	if req.Notes != nil {
		g.Notes = *req.Notes
	}
	if err := s.guests.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// CheckIn marks the guest as arrived. Checking in an already checked-in
// guest is a no-op that keeps the original check-in time.
func (s *GuestService) CheckIn(ctx context.Context, id string) (*model.GuestEntry, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.CheckedIn {
		return g, nil
	}
	now := time.Now().UTC()
	g.CheckedIn = true
	g.CheckInTime = &now
	g.RSVPStatus = model.RSVPAttended
	if err := s.guests.Update(ctx, g); err != nil {
		return nil, err
	}
	logger.Log.Info("guest checked in", "guest_id", id, "event_id", g.EventID)
	return g, nil
}

// Remove deletes a guest entry from the list.
func (s *GuestService) Remove(ctx context.Context, id string) error {
	return s.guests.Delete(ctx, id)
}

// List returns guest entries matching the filter.
func (s *GuestService) List(ctx context.Context, f model.GuestFilter) ([]model.GuestEntry, int, error) {
	return s.guests.List(ctx, f)
}

// Stats summarises an event's guest list.
func (s *GuestService) Stats(ctx context.Context, eventID string) (*model.GuestStats, error) {
	return s.guests.StatsByEvent(ctx, eventID)
}
