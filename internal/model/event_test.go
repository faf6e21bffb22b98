package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestAvailableSeats(t *testing.T) {
	e := Event{Capacity: 10, BookedSeats: 8}
	assert.Equal(t, 2, e.AvailableSeats())
	assert.False(t, e.IsFull())

	e.BookedSeats = 10
	assert.Equal(t, 0, e.AvailableSeats())
	assert.True(t, e.IsFull())

	// Floors at zero even if the stored count is inconsistent.
	e.BookedSeats = 12
	assert.Equal(t, 0, e.AvailableSeats())
}

func TestEventStatusBookable(t *testing.T) {
	assert.True(t, EventStatusUpcoming.Bookable())
	assert.True(t, EventStatusOngoing.Bookable())
	assert.False(t, EventStatusPending.Bookable())
	assert.False(t, EventStatusCompleted.Bookable())
	assert.False(t, EventStatusCancelled.Bookable())
	assert.False(t, EventStatusRejected.Bookable())
}

func TestCarouselEligible(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	future := Event{Status: EventStatusUpcoming, Date: now.AddDate(0, 0, 7)}
	assert.True(t, future.CarouselEligible(now))

	// Same-day events remain eligible even after the clock passes midnight.
	today := Event{Status: EventStatusOngoing, Date: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)}
	assert.True(t, today.CarouselEligible(now))

	past := Event{Status: EventStatusUpcoming, Date: now.AddDate(0, 0, -1)}
	assert.False(t, past.CarouselEligible(now))

	pending := Event{Status: EventStatusPending, Date: now.AddDate(0, 0, 7)}
	assert.False(t, pending.CarouselEligible(now))
}

func TestRepackPositionsDense(t *testing.T) {
	d := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{
		{ID: "c", CarouselPosition: intPtr(7), Date: d},
		{ID: "a", CarouselPosition: intPtr(2), Date: d},
		{ID: "b", CarouselPosition: intPtr(5), Date: d},
	}

	got := RepackPositions(events)

	assert.Equal(t, []CarouselAssignment{
		{EventID: "a", Position: 1},
		{EventID: "b", Position: 2},
		{EventID: "c", Position: 3},
	}, got)
}

func TestRepackPositionsTieBreakByDate(t *testing.T) {
	early := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{
		{ID: "later", CarouselPosition: intPtr(3), Date: late},
		{ID: "sooner", CarouselPosition: intPtr(3), Date: early},
		{ID: "nowhere", CarouselPosition: nil, Date: early},
	}

	got := RepackPositions(events)

	assert.Equal(t, []CarouselAssignment{
		{EventID: "sooner", Position: 1},
		{EventID: "later", Position: 2},
		{EventID: "nowhere", Position: 3},
	}, got)
}

func TestRepackPositionsEmpty(t *testing.T) {
	assert.Empty(t, RepackPositions(nil))
}
