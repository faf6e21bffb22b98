package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eventra/eventra-backend/internal/logger"
	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/repository"
)

// EventStore is the persistence surface EventService needs.
type EventStore interface {
	Create(ctx context.Context, e *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	Update(ctx context.Context, e *model.Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f model.EventFilter) ([]model.Event, int, error)
	Categories(ctx context.Context) ([]string, error)
	IncrementViews(ctx context.Context, id string) error
}

// ActiveReservationCounter reports how many live reservations reference an
// event. Used by the deletion policy.
type ActiveReservationCounter interface {
	CountActiveByEvent(ctx context.Context, eventID string) (int, error)
}

// EventService handles event listings: creation, moderation, discovery, and
// the deletion policy.
type EventService struct {
	events       EventStore
	reservations ActiveReservationCounter
}

// NewEventService constructs an EventService.
func NewEventService(events EventStore, reservations ActiveReservationCounter) *EventService {
	return &EventService{events: events, reservations: reservations}
}

func validateEventFields(title, venue string, date time.Time, price float64, capacity int) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(venue) == "" {
		return fmt.Errorf("%w: venue is required", ErrValidation)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
	}
	return nil
}

// Create builds a new event for the hoster. Events start in pending status
// and become bookable only after admin approval. The hoster's negotiated
// commission rate is snapshotted onto the event.
func (s *EventService) Create(ctx context.Context, hoster *model.Hoster, req model.CreateEventRequest) (*model.Event, error) {
	if err := validateEventFields(req.Title, req.Venue, req.Date, req.Price, req.Capacity); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &model.Event{
		ID:               uuid.NewString(),
		HosterID:         hoster.ID,
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Venue:            strings.TrimSpace(req.Venue),
		Location:         req.Location,
		Date:             req.Date,
		Time:             req.Time,
		Category:         req.Category,
		Price:            req.Price,
		CommissionRate:   hoster.CommissionRate,
		Images:           req.Images,
		FeaturedImage:    req.FeaturedImage,
		Tags:             req.Tags,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		Capacity:         req.Capacity,
		Status:           model.EventStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	logger.Log.Info("event created", "event_id", e.ID, "hoster_id", hoster.ID, "title", e.Title)
	return e, nil
}

// Get returns an event by ID.
func (s *EventService) Get(ctx context.Context, id string) (*model.Event, error) {
	return s.events.GetByID(ctx, id)
}

// GetPublic returns a publicly visible event and bumps its view counter.
// Events that are not bookable are hidden from the public detail page.
func (s *EventService) GetPublic(ctx context.Context, id string) (*model.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !e.Status.Bookable() {
		return nil, repository.ErrNotFound
	}
	if err := s.events.IncrementViews(ctx, id); err != nil {
		logger.Log.Warn("increment views failed", "event_id", id, "error", err)
	}
	e.Views++
	return e, nil
}

// Update applies a partial update on behalf of the owning hoster. asAdmin
// bypasses the ownership check. Capacity may not drop below the seats
// already booked.
func (s *EventService) Update(ctx context.Context, callerID string, asAdmin bool, id string, req model.UpdateEventRequest) (*model.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !asAdmin && e.HosterID != callerID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		e.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.ShortDescription != nil {
		e.ShortDescription = *req.ShortDescription
	}
	if req.Venue != nil {
		e.Venue = strings.TrimSpace(*req.Venue)
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.Time != nil {
		e.Time = *req.Time
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Price != nil {
		e.Price = *req.Price
	}
	if req.Images != nil {
		e.Images = req.Images
	}
	if req.FeaturedImage != nil {
		e.FeaturedImage = *req.FeaturedImage
	}
	if req.Tags != nil {
		e.Tags = req.Tags
	}
	if req.ContactEmail != nil {
		e.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		e.ContactPhone = *req.ContactPhone
	}
	if req.Capacity != nil {
		if *req.Capacity < e.BookedSeats {
			return nil, fmt.Errorf("%w: capacity %d is below the %d seats already booked",
				ErrValidation, *req.Capacity, e.BookedSeats)
		}
		if *req.Capacity < 1 {
			return nil, fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
		}
		e.Capacity = *req.Capacity
	}

	if err := validateEventFields(e.Title, e.Venue, e.Date, e.Price, e.Capacity); err != nil {
		return nil, err
	}
	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// SetStatus moves an event through its moderation lifecycle. Admin only.
func (s *EventService) SetStatus(ctx context.Context, id string, status model.EventStatus, adminNotes string) (*model.Event, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown event status %q", ErrValidation, status)
	}
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Status = status
	if adminNotes != "" {
		e.AdminNotes = adminNotes
	}
	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	logger.Log.Info("event status changed", "event_id", id, "status", status)
	return e, nil
}

// Delete removes an event on behalf of its hoster or an admin. Deletion is
// refused while non-cancelled reservations reference the event.
func (s *EventService) Delete(ctx context.Context, callerID string, asAdmin bool, id string) error {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !asAdmin && e.HosterID != callerID {
		return ErrForbidden
	}

	active, err := s.reservations.CountActiveByEvent(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return repository.ErrEventHasReservations
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("event deleted", "event_id", id)
	return nil
}

// Discover lists bookable future events for the public catalogue.
func (s *EventService) Discover(ctx context.Context, f model.EventFilter) ([]model.Event, int, error) {
	f.Statuses = model.BookableStatuses
	f.FutureOnly = true
	return s.events.List(ctx, f)
}

// List returns events without public-visibility restrictions. Used by hoster
// and admin dashboards; the handler scopes HosterID for hosters.
func (s *EventService) List(ctx context.Context, f model.EventFilter) ([]model.Event, int, error) {
	return s.events.List(ctx, f)
}

// Categories returns the distinct categories of bookable future events.
func (s *EventService) Categories(ctx context.Context) ([]string, error) {
	return s.events.Categories(ctx)
}
