// Package service implements the business rules on top of the repositories:
// booking, lifecycle transitions, guest admission, curation, and auth.
package service

import "errors"

var (
	// ErrValidation wraps all request validation failures. Wrapped messages
	// carry the field-level detail.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition is returned for illegal reservation status changes.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive is returned when the account exists but may not log
	// in (pending approval, rejected, suspended, or deactivated).
	ErrAccountInactive = errors.New("account is not active")

	// ErrForbidden is returned when an authenticated caller does not own the
	// resource it is mutating.
	ErrForbidden = errors.New("forbidden")

	// ErrTicketUnavailable is returned when an eTicket is requested for a
	// reservation that is not confirmed.
	ErrTicketUnavailable = errors.New("ticket not available for this reservation")
)
