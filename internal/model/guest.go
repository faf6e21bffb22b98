package model

import "time"

// RSVPStatus is the response state of a guest entry.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPAttended  RSVPStatus = "attended"
)

// Valid reports whether s is a known RSVP status.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPPending, RSVPConfirmed, RSVPDeclined, RSVPAttended:
		return true
	}
	return false
}

// MaxGroupSize caps the party size of a directly admitted guest entry.
// Entries linked to a reservation mirror the booked ticket count instead,
// which may exceed this cap.
const MaxGroupSize = 10

// Companion is a named additional guest registered under a primary entry.
type Companion struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// GuestEntry is an admission record for an event, keyed by phone number.
// At most one entry exists per (event, phone) pair. A guest entry may be
// linked to a reservation when it was created as part of a paid booking.
type GuestEntry struct {
	ID            string      `json:"id"`
	EventID       string      `json:"event_id"`
	ReservationID *string     `json:"reservation_id,omitempty"`
	GuestName     string      `json:"guest_name"`
	Email         string      `json:"email,omitempty"`
	Phone         string      `json:"phone"`
	Companions    []Companion `json:"companions,omitempty"`
	GroupSize     int         `json:"group_size"`
	RSVPStatus    RSVPStatus  `json:"rsvp_status"`
	CheckedIn     bool        `json:"checked_in"`
	CheckInTime   *time.Time  `json:"check_in_time,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	AddedBy       string      `json:"added_by"`
	AddedAt       time.Time   `json:"added_at"`
}

// GuestStats summarises the guest list of one event.
type GuestStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Declined  int `json:"declined"`
	CheckedIn int `json:"checked_in"`
}
