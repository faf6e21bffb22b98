// Package repository implements all database queries for the marketplace.
// It uses pgx directly (no ORM) for transparency and performance.
package repository

import "errors"

// Sentinel errors returned by repositories. Services and handlers match
// these with errors.Is to pick the correct response.
var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCapacityExceeded is returned when a reservation asks for more
	// seats than the event has left.
	ErrCapacityExceeded = errors.New("not enough seats available")

	// ErrNotBookable is returned when the event's status excludes booking.
	ErrNotBookable = errors.New("event is not open for booking")

	// ErrDuplicateGuest is returned when a phone number is already on the
	// guest list of the same event.
	ErrDuplicateGuest = errors.New("phone number already registered for this event")

	// ErrAlreadyFeatured is returned when adding a carousel member twice.
	ErrAlreadyFeatured = errors.New("event already in carousel")

	// ErrNotFeatured is returned when removing or reordering an event that
	// is not in the carousel.
	ErrNotFeatured = errors.New("event not in carousel")

	// ErrCarouselFull is returned when the carousel holds its maximum
	// number of events.
	ErrCarouselFull = errors.New("carousel already has the maximum number of events")

	// ErrNotEligible is returned when an event's status or date disqualify
	// it from the carousel.
	ErrNotEligible = errors.New("event is not eligible for the carousel")

	// ErrEmailTaken is returned when an account email is already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrEventHasReservations blocks deletion of events with outstanding
	// non-cancelled reservations.
	ErrEventHasReservations = errors.New("event has active reservations")
)
