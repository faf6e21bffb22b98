package model

import "time"

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateEventRequest is the payload for a hoster creating an event.
type CreateEventRequest struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	Venue            string    `json:"venue"`
	Location         string    `json:"location"`
	Date             time.Time `json:"date"`
	Time             string    `json:"time"`
	Category         string    `json:"category"`
	Price            float64   `json:"price"`
	Images           []string  `json:"images"`
	FeaturedImage    string    `json:"featured_image"`
	Tags             []string  `json:"tags"`
	ContactEmail     string    `json:"contact_email"`
	ContactPhone     string    `json:"contact_phone"`
	Capacity         int       `json:"capacity"`
}

// UpdateEventRequest carries optional field updates for an event. Nil fields
// are left unchanged.
type UpdateEventRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	ShortDescription *string    `json:"short_description"`
	Venue            *string    `json:"venue"`
	Location         *string    `json:"location"`
	Date             *time.Time `json:"date"`
	Time             *string    `json:"time"`
	Category         *string    `json:"category"`
	Price            *float64   `json:"price"`
	Images           []string   `json:"images"`
	FeaturedImage    *string    `json:"featured_image"`
	Tags             []string   `json:"tags"`
	ContactEmail     *string    `json:"contact_email"`
	ContactPhone     *string    `json:"contact_phone"`
	Capacity         *int       `json:"capacity"`
}

// CreateReservationRequest is the public booking payload.
type CreateReservationRequest struct {
	EventID             string `json:"event_id"`
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	TicketCount         int    `json:"ticket_count"`
	SpecialRequirements string `json:"special_requirements"`
	PaymentMethod       string `json:"payment_method"`
	TicketType          string `json:"ticket_type"`
}

// AdmitGuestRequest is the payload for registering on an event's guest list.
type AdmitGuestRequest struct {
	EventID    string      `json:"event_id"`
	GuestName  string      `json:"guest_name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Companions []Companion `json:"companions"`
	Notes      string      `json:"notes"`
}

// UpdateGuestRequest carries optional guest entry updates.
type UpdateGuestRequest struct {
	GuestName  *string     `json:"guest_name"`
	Email      *string     `json:"email"`
	RSVPStatus *RSVPStatus `json:"rsvp_status"`
	Notes      *string     `json:"notes"`
}

// RegisterHosterRequest is the hoster sign-up payload.
type RegisterHosterRequest struct {
	CompanyName    string `json:"company_name"`
	ContactPerson  string `json:"contact_person"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	WhatsAppNumber string `json:"whatsapp_number"`
	Website        string `json:"website"`
	Password       string `json:"password"`
}

// LoginRequest is shared by hoster and admin logins.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EventFilter narrows event listings.
type EventFilter struct {
	Statuses   []EventStatus
	HosterID   string
	Category   string
	Search     string
	FutureOnly bool
	Page       int
	Limit      int
}

// ReservationFilter narrows reservation listings.
type ReservationFilter struct {
	EventID  string
	HosterID string
	Phone    string
	Status   ReservationStatus
	Page     int
	Limit    int
}

// GuestFilter narrows guest list queries.
type GuestFilter struct {
	EventID    string
	RSVPStatus RSVPStatus
	CheckedIn  *bool
	Search     string
	Page       int
	Limit      int
}

// Normalize applies defaults and bounds to pagination parameters.
func NormalizePage(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
