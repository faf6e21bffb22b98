package model

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationRefunded  ReservationStatus = "refunded"
	ReservationCompleted ReservationStatus = "completed"
)

// PaymentStatus tracks payment state independently of the reservation state.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// reservationTransitions encodes the legal status changes:
// pending → {confirmed, cancelled}; confirmed → {cancelled, refunded, completed}.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCancelled, ReservationRefunded, ReservationCompleted},
}

// Valid reports whether s is a known reservation status.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled,
		ReservationRefunded, ReservationCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change s → next is legal.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ReleasesSeats reports whether entering this status returns reserved seats
// to the event's inventory.
func (s ReservationStatus) ReleasesSeats() bool {
	return s == ReservationCancelled || s == ReservationRefunded
}

// MaxTicketsPerReservation caps a single reservation's ticket count.
const MaxTicketsPerReservation = 20

// Reservation is a paid (or pending-payment) seat booking against an event.
// UnitPrice and CommissionRate are snapshots taken at creation time; later
// changes to the event never alter an existing reservation's amounts.
type Reservation struct {
	ID                  string            `json:"id"`
	EventID             string            `json:"event_id"`
	HosterID            string            `json:"hoster_id"`
	FullName            string            `json:"full_name"`
	Email               string            `json:"email,omitempty"`
	Phone               string            `json:"phone"`
	TicketCount         int               `json:"ticket_count"`
	UnitPrice           float64           `json:"unit_price"`
	TotalAmount         float64           `json:"total_amount"`
	CommissionRate      float64           `json:"commission_rate"`
	CommissionAmount    float64           `json:"commission_amount"`
	NetAmount           float64           `json:"net_amount"`
	SpecialRequirements string            `json:"special_requirements,omitempty"`
	PaymentMethod       string            `json:"payment_method"`
	TicketType          string            `json:"ticket_type"`
	Status              ReservationStatus `json:"status"`
	PaymentStatus       PaymentStatus     `json:"payment_status"`
	CreatedAt           time.Time         `json:"created_at"`
}

// ComputeAmounts derives the financial fields from the snapshotted unit price
// and commission rate.
func ComputeAmounts(ticketCount int, unitPrice, commissionRate float64) (total, commission, net float64) {
	total = float64(ticketCount) * unitPrice
	commission = total * commissionRate / 100
	net = total - commission
	return total, commission, net
}
