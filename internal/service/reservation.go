package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eventra/eventra-backend/internal/logger"
	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/notify"
	"github.com/eventra/eventra-backend/internal/repository"
	"github.com/eventra/eventra-backend/internal/ticket"
)

// SeatInventory is the seat-accounting surface of the event store. The
// ReserveSeats implementation must be atomic under concurrency.
type SeatInventory interface {
	GetByID(ctx context.Context, id string) (*model.Event, error)
	ReserveSeats(ctx context.Context, eventID string, count int) (*model.Event, error)
	ReleaseSeats(ctx context.Context, eventID string, count int) error
}

// ReservationStore is the persistence surface ReservationService needs.
type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	SetStatus(ctx context.Context, id string, status model.ReservationStatus) error
	SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error
	List(ctx context.Context, f model.ReservationFilter) ([]model.Reservation, int, error)
}

// GuestRegistrar creates and resolves reservation-linked guest entries.
type GuestRegistrar interface {
	Create(ctx context.Context, g *model.GuestEntry) error
	GetByReservation(ctx context.Context, reservationID string) (*model.GuestEntry, error)
}

// HosterLookup fetches hoster profiles, used for WhatsApp contact links.
type HosterLookup interface {
	GetByID(ctx context.Context, id string) (*model.Hoster, error)
}

// BookingResult is the response to a successful reservation: the booking
// itself, the linked guest entry if one could be created, and an optional
// WhatsApp link to the hoster.
type BookingResult struct {
	Reservation  *model.Reservation `json:"reservation"`
	Guest        *model.GuestEntry  `json:"guest,omitempty"`
	WhatsAppLink string             `json:"whatsapp_link,omitempty"`
}

// ReservationService handles booking creation and the reservation lifecycle.
type ReservationService struct {
	seats        SeatInventory
	reservations ReservationStore
	guests       GuestRegistrar
	hosters      HosterLookup
	tickets      *ticket.Generator
}

// NewReservationService constructs a ReservationService.
func NewReservationService(seats SeatInventory, reservations ReservationStore, guests GuestRegistrar, hosters HosterLookup, tickets *ticket.Generator) *ReservationService {
	return &ReservationService{
		seats:        seats,
		reservations: reservations,
		guests:       guests,
		hosters:      hosters,
		tickets:      tickets,
	}
}

// Create books seats against an event. Seats are reserved atomically first;
// the money fields are snapshotted from the event state read under that same
// lock, so a concurrent price change cannot produce a mixed snapshot.
//
// A guest list entry is linked to the booking on a best-effort basis: if the
// phone is already on the event's guest list the booking still succeeds and
// the result carries no guest entry.
func (s *ReservationService) Create(ctx context.Context, req model.CreateReservationRequest) (*BookingResult, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full_name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if req.TicketCount < 1 || req.TicketCount > model.MaxTicketsPerReservation {
		return nil, fmt.Errorf("%w: ticket_count must be between 1 and %d",
			ErrValidation, model.MaxTicketsPerReservation)
	}

	event, err := s.seats.ReserveSeats(ctx, req.EventID, req.TicketCount)
	if err != nil {
		return nil, err
	}

	total, commission, net := model.ComputeAmounts(req.TicketCount, event.Price, event.CommissionRate)
	ticketType := req.TicketType
	if ticketType == "" {
		ticketType = "standard"
	}
	res := &model.Reservation{
		ID:                  uuid.NewString(),
		EventID:             event.ID,
		HosterID:            event.HosterID,
		FullName:            strings.TrimSpace(req.FullName),
		Email:               strings.TrimSpace(req.Email),
		Phone:               strings.TrimSpace(req.Phone),
		TicketCount:         req.TicketCount,
		UnitPrice:           event.Price,
		TotalAmount:         total,
		CommissionRate:      event.CommissionRate,
		CommissionAmount:    commission,
		NetAmount:           net,
		SpecialRequirements: req.SpecialRequirements,
		PaymentMethod:       req.PaymentMethod,
		TicketType:          ticketType,
		Status:              model.ReservationPending,
		PaymentStatus:       model.PaymentPending,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		// The seats were already taken from inventory; hand them back.
		if relErr := s.seats.ReleaseSeats(ctx, event.ID, req.TicketCount); relErr != nil {
			logger.Log.Error("release seats after failed insert", "event_id", event.ID, "error", relErr)
		}
		return nil, err
	}

	result := &BookingResult{Reservation: res}

	guest := &model.GuestEntry{
		ID:            uuid.NewString(),
		EventID:       event.ID,
		ReservationID: &res.ID,
		GuestName:     res.FullName,
		Email:         res.Email,
		Phone:         res.Phone,
		GroupSize:     req.TicketCount,
		RSVPStatus:    model.RSVPConfirmed,
		AddedBy:       "reservation",
		AddedAt:       res.CreatedAt,
	}
	if err := s.guests.Create(ctx, guest); err != nil {
		if errors.Is(err, repository.ErrDuplicateGuest) {
			logger.Log.Info("phone already on guest list", "event_id", event.ID, "reservation_id", res.ID)
		} else {
			logger.Log.Warn("link guest entry failed", "reservation_id", res.ID, "error", err)
		}
	} else {
		result.Guest = guest
	}

	if hoster, err := s.hosters.GetByID(ctx, event.HosterID); err == nil {
		result.WhatsAppLink = notify.ReservationLink(hoster.WhatsAppNumber, res, event)
	}

	logger.Log.Info("reservation created",
		"reservation_id", res.ID, "event_id", event.ID,
		"tickets", res.TicketCount, "total", res.TotalAmount)
	return result, nil
}

// Get returns a reservation by ID.
func (s *ReservationService) Get(ctx context.Context, id string) (*model.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// List returns reservations matching the filter.
func (s *ReservationService) List(ctx context.Context, f model.ReservationFilter) ([]model.Reservation, int, error) {
	return s.reservations.List(ctx, f)
}

// UpdateStatus applies a lifecycle transition. Re-cancelling an already
// cancelled reservation is a no-op; any other illegal transition is
// ErrInvalidTransition. Entering cancelled or refunded returns the seats to
// the event's inventory.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, next model.ReservationStatus) (*model.Reservation, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown reservation status %q", ErrValidation, next)
	}
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status == next {
		if next == model.ReservationCancelled {
			return res, nil
		}
		return nil, ErrInvalidTransition
	}
	if !res.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.reservations.SetStatus(ctx, id, next); err != nil {
		return nil, err
	}
	res.Status = next

	if next.ReleasesSeats() {
		if err := s.seats.ReleaseSeats(ctx, res.EventID, res.TicketCount); err != nil {
			return nil, fmt.Errorf("release seats: %w", err)
		}
	}
	if next == model.ReservationRefunded {
		if err := s.reservations.SetPaymentStatus(ctx, id, model.PaymentRefunded); err != nil {
			logger.Log.Warn("mark payment refunded failed", "reservation_id", id, "error", err)
		} else {
			res.PaymentStatus = model.PaymentRefunded
		}
	}

	logger.Log.Info("reservation status changed", "reservation_id", id, "status", next)
	return res, nil
}

// SetPaymentStatus records a payment state change from the hoster or admin.
func (s *ReservationService) SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) (*model.Reservation, error) {
	switch status {
	case model.PaymentPending, model.PaymentPaid, model.PaymentFailed, model.PaymentRefunded:
	default:
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, status)
	}
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.reservations.SetPaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}
	res.PaymentStatus = status
	return res, nil
}

// Ticket renders the eTicket PDF for a confirmed reservation.
func (s *ReservationService) Ticket(ctx context.Context, id string) ([]byte, *model.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if res.Status != model.ReservationConfirmed {
		return nil, nil, ErrTicketUnavailable
	}
	event, err := s.seats.GetByID(ctx, res.EventID)
	if err != nil {
		return nil, nil, err
	}
	guest, err := s.guests.GetByReservation(ctx, res.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, nil, err
		}
		guest = nil
	}
	pdf, err := s.tickets.Render(res, event, guest)
	if err != nil {
		return nil, nil, err
	}
	return pdf, res, nil
}
