// Package model defines the core domain types for the event marketplace.
package model

import "time"

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusRejected  EventStatus = "rejected"
)

// BookableStatuses are the states in which new reservations are accepted.
// The same set gates carousel eligibility.
var BookableStatuses = []EventStatus{EventStatusUpcoming, EventStatusOngoing}

// Valid reports whether s is a known event status.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusUpcoming, EventStatusOngoing,
		EventStatusCompleted, EventStatusCancelled, EventStatusRejected:
		return true
	}
	return false
}

// Bookable reports whether an event in this status accepts reservations.
func (s EventStatus) Bookable() bool {
	return s == EventStatusUpcoming || s == EventStatusOngoing
}

// CarouselCapacity bounds the number of simultaneously featured events.
const CarouselCapacity = 10

// Event is a listing created by a hoster with finite seating.
type Event struct {
	ID               string      `json:"id"`
	HosterID         string      `json:"hoster_id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"short_description"`
	Venue            string      `json:"venue"`
	Location         string      `json:"location"`
	Date             time.Time   `json:"date"`
	Time             string      `json:"time"`
	Category         string      `json:"category"`
	Price            float64     `json:"price"`
	CommissionRate   float64     `json:"commission_rate"`
	Images           []string    `json:"images"`
	FeaturedImage    string      `json:"featured_image"`
	Tags             []string    `json:"tags"`
	ContactEmail     string      `json:"contact_email"`
	ContactPhone     string      `json:"contact_phone"`
	Capacity         int         `json:"capacity"`
	BookedSeats      int         `json:"booked_seats"`
	IsFeatured       bool        `json:"is_featured"`
	CarouselPosition *int        `json:"carousel_position,omitempty"`
	FeaturedAt       *time.Time  `json:"featured_at,omitempty"`
	Status           EventStatus `json:"status"`
	AdminNotes       string      `json:"admin_notes,omitempty"`
	Views            int         `json:"views"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// AvailableSeats returns the number of seats still open for booking.
func (e *Event) AvailableSeats() int {
	if n := e.Capacity - e.BookedSeats; n > 0 {
		return n
	}
	return 0
}

// IsFull reports whether no seats remain.
func (e *Event) IsFull() bool {
	return e.BookedSeats >= e.Capacity
}

// CarouselEligible reports whether the event may be added to the carousel:
// it must be in a bookable status and not already past.
func (e *Event) CarouselEligible(now time.Time) bool {
	if !e.Status.Bookable() {
		return false
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !e.Date.Before(day)
}

// CarouselAssignment pairs an event with an absolute carousel position.
type CarouselAssignment struct {
	EventID  string `json:"event_id"`
	Position int    `json:"position"`
}

// RepackPositions assigns a dense 1..K position sequence to the given events,
// preserving their prior relative order. Ties (events sharing a position, or
// events with no position) are broken by event date ascending. The input
// order is not relied upon.
func RepackPositions(events []Event) []CarouselAssignment {
	sorted := make([]Event, len(events))
	copy(sorted, events)

	pos := func(e *Event) int {
		if e.CarouselPosition == nil {
			return int(^uint(0) >> 1)
		}
		return *e.CarouselPosition
	}

	// Insertion sort keeps this simple for a bounded (≤10) slice.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0; j-- {
			a, b := &sorted[j-1], &sorted[j]
			if pos(a) > pos(b) || (pos(a) == pos(b) && a.Date.After(b.Date)) {
				sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
			} else {
				break
			}
		}
	}

	out := make([]CarouselAssignment, len(sorted))
	for i := range sorted {
		out[i] = CarouselAssignment{EventID: sorted[i].ID, Position: i + 1}
	}
	return out
}
