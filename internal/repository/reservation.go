package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `id, event_id, hoster_id, full_name, email, phone,
	ticket_count, unit_price, total_amount, commission_rate, commission_amount,
	net_amount, special_requirements, payment_method, ticket_type, status,
	payment_status, created_at`

func scanReservation(row pgx.Row) (*model.Reservation, error) {
	var res model.Reservation
	err := row.Scan(
		&res.ID, &res.EventID, &res.HosterID, &res.FullName, &res.Email,
		&res.Phone, &res.TicketCount, &res.UnitPrice, &res.TotalAmount,
		&res.CommissionRate, &res.CommissionAmount, &res.NetAmount,
		&res.SpecialRequirements, &res.PaymentMethod, &res.TicketType,
		&res.Status, &res.PaymentStatus, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return &res, nil
}

// ReservationRepository handles persistence for reservations.
type ReservationRepository struct {
	db *pgxpool.Pool
}

// NewReservationRepository constructs a ReservationRepository.
func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts a new reservation.
func (r *ReservationRepository) Create(ctx context.Context, res *model.Reservation) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reservations (`+reservationColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		res.ID, res.EventID, res.HosterID, res.FullName, res.Email, res.Phone,
		res.TicketCount, res.UnitPrice, res.TotalAmount, res.CommissionRate,
		res.CommissionAmount, res.NetAmount, res.SpecialRequirements,
		res.PaymentMethod, res.TicketType, res.Status, res.PaymentStatus,
		res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID returns a single reservation or ErrNotFound.
func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	return scanReservation(row)
}

// SetStatus updates the reservation status.
func (r *ReservationRepository) SetStatus(ctx context.Context, id string, status model.ReservationStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPaymentStatus updates the payment state independently of the
// reservation lifecycle.
func (r *ReservationRepository) SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET payment_status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns reservations matching the filter plus the unpaginated total,
// newest first.
func (r *ReservationRepository) List(ctx context.Context, f model.ReservationFilter) ([]model.Reservation, int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.EventID != "" {
		where = append(where, `event_id = `+arg(f.EventID))
	}
	if f.HosterID != "" {
		where = append(where, `hoster_id = `+arg(f.HosterID))
	}
	if f.Phone != "" {
		where = append(where, `phone = `+arg(f.Phone))
	}
	if f.Status != "" {
		where = append(where, `status = `+arg(string(f.Status)))
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reservations: %w", err)
	}

	page, limit := model.NormalizePage(f.Page, f.Limit, 20, 100)
	query := `SELECT ` + reservationColumns + ` FROM reservations` + cond +
		` ORDER BY created_at DESC` +
		` LIMIT ` + arg(limit) + ` OFFSET ` + arg((page-1)*limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, total, rows.Err()
}

// CountActiveByEvent counts non-cancelled reservations referencing the
// event. Used by the event deletion policy.
func (r *ReservationRepository) CountActiveByEvent(ctx context.Context, eventID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations
		 WHERE event_id = $1 AND status <> $2`,
		eventID, model.ReservationCancelled,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active reservations: %w", err)
	}
	return n, nil
}
