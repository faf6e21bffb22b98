package service

import (
	"context"
	"fmt"

	"github.com/eventra/eventra-backend/internal/logger"
	"github.com/eventra/eventra-backend/internal/model"
)

// CarouselStore is the persistence surface CarouselService needs. The
// implementation owns the bounded-size and dense-position invariants.
type CarouselStore interface {
	Add(ctx context.Context, eventID string) (*model.Event, error)
	Remove(ctx context.Context, eventID string) error
	Reorder(ctx context.Context, items []model.CarouselAssignment) error
	List(ctx context.Context, publicOnly bool) ([]model.Event, error)
}

// CarouselService manages the featured event carousel.
type CarouselService struct {
	store CarouselStore
}

// NewCarouselService constructs a CarouselService.
func NewCarouselService(store CarouselStore) *CarouselService {
	return &CarouselService{store: store}
}

// Feature adds an event to the end of the carousel.
func (s *CarouselService) Feature(ctx context.Context, eventID string) (*model.Event, error) {
	e, err := s.store.Add(ctx, eventID)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("event featured", "event_id", eventID, "position", *e.CarouselPosition)
	return e, nil
}

// Unfeature removes an event from the carousel. The remaining positions stay
// dense.
func (s *CarouselService) Unfeature(ctx context.Context, eventID string) error {
	if err := s.store.Remove(ctx, eventID); err != nil {
		return err
	}
	logger.Log.Info("event unfeatured", "event_id", eventID)
	return nil
}

// Reorder applies new absolute positions to the carousel.
func (s *CarouselService) Reorder(ctx context.Context, items []model.CarouselAssignment) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one carousel item is required", ErrValidation)
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.EventID == "" {
			return fmt.Errorf("%w: event_id is required for every item", ErrValidation)
		}
		if item.Position < 1 {
			return fmt.Errorf("%w: positions start at 1", ErrValidation)
		}
		if seen[item.EventID] {
			return fmt.Errorf("%w: duplicate event %s", ErrValidation, item.EventID)
		}
		seen[item.EventID] = true
	}
	return s.store.Reorder(ctx, items)
}

// Public returns the carousel restricted to bookable future events, in
// display order.
func (s *CarouselService) Public(ctx context.Context) ([]model.Event, error) {
	return s.store.List(ctx, true)
}

// All returns the full carousel for the admin view, including members that
// have since become ineligible.
func (s *CarouselService) All(ctx context.Context) ([]model.Event, error) {
	return s.store.List(ctx, false)
}
