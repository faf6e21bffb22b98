package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventra/eventra-backend/internal/model"
)

type fakeCarouselStore struct {
	reordered []model.CarouselAssignment
}

func (s *fakeCarouselStore) Add(_ context.Context, eventID string) (*model.Event, error) {
	pos := 1
	return &model.Event{ID: eventID, IsFeatured: true, CarouselPosition: &pos}, nil
}

func (s *fakeCarouselStore) Remove(context.Context, string) error { return nil }

func (s *fakeCarouselStore) Reorder(_ context.Context, items []model.CarouselAssignment) error {
	s.reordered = items
	return nil
}

func (s *fakeCarouselStore) List(context.Context, bool) ([]model.Event, error) { return nil, nil }

func TestReorderValidation(t *testing.T) {
	store := &fakeCarouselStore{}
	svc := NewCarouselService(store)
	ctx := context.Background()

	err := svc.Reorder(ctx, nil)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Reorder(ctx, []model.CarouselAssignment{{EventID: "a", Position: 0}})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Reorder(ctx, []model.CarouselAssignment{
		{EventID: "a", Position: 1},
		{EventID: "a", Position: 2},
	})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Nil(t, store.reordered)

	items := []model.CarouselAssignment{
		{EventID: "a", Position: 2},
		{EventID: "b", Position: 1},
	}
	require.NoError(t, svc.Reorder(ctx, items))
	assert.Equal(t, items, store.reordered)
}
