package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const guestColumns = `id, event_id, reservation_id, guest_name, email, phone,
	companions, group_size, rsvp_status, checked_in, check_in_time, notes,
	added_by, added_at`

func scanGuest(row pgx.Row) (*model.GuestEntry, error) {
	var g model.GuestEntry
	err := row.Scan(
		&g.ID, &g.EventID, &g.ReservationID, &g.GuestName, &g.Email, &g.Phone,
		&g.Companions, &g.GroupSize, &g.RSVPStatus, &g.CheckedIn,
		&g.CheckInTime, &g.Notes, &g.AddedBy, &g.AddedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan guest entry: %w", err)
	}
	return &g, nil
}

// GuestRepository handles persistence for guest entries.
type GuestRepository struct {
	db *pgxpool.Pool
}

// NewGuestRepository constructs a GuestRepository.
func NewGuestRepository(db *pgxpool.Pool) *GuestRepository {
	return &GuestRepository{db: db}
}

// Create inserts a new guest entry. The (event_id, phone) uniqueness is
// enforced by a unique index so that two concurrent admissions cannot both
// pass an existence check; the conflict surfaces as ErrDuplicateGuest.
func (r *GuestRepository) Create(ctx context.Context, g *model.GuestEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO guest_entries (`+guestColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		g.ID, g.EventID, g.ReservationID, g.GuestName, g.Email, g.Phone,
		g.Companions, g.GroupSize, g.RSVPStatus, g.CheckedIn, g.CheckInTime,
		g.Notes, g.AddedBy, g.AddedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateGuest
		}
		return fmt.Errorf("insert guest entry: %w", err)
	}
	return nil
}

// GetByReservation returns the guest entry linked to a reservation or
// ErrNotFound.
func (r *GuestRepository) GetByReservation(ctx context.Context, reservationID string) (*model.GuestEntry, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+guestColumns+` FROM guest_entries WHERE reservation_id = $1`, reservationID)
	return scanGuest(row)
}

// GetByID returns a single guest entry or ErrNotFound.
func (r *GuestRepository) GetByID(ctx context.Context, id string) (*model.GuestEntry, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+guestColumns+` FROM guest_entries WHERE id = $1`, id)
	return scanGuest(row)
}

// Update persists the mutable fields of a guest entry.
func (r *GuestRepository) Update(ctx context.Context, g *model.GuestEntry) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE guest_entries SET
			guest_name = $2, email = $3, rsvp_status = $4, checked_in = $5,
			check_in_time = $6, notes = $7
		 WHERE id = $1`,
		g.ID, g.GuestName, g.Email, g.RSVPStatus, g.CheckedIn, g.CheckInTime,
		g.Notes,
	)
	if err != nil {
		return fmt.Errorf("update guest entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a guest entry. The linked reservation, if any, is left
// untouched.
func (r *GuestRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM guest_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete guest entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns guest entries matching the filter plus the unpaginated
// total, newest first.
func (r *GuestRepository) List(ctx context.Context, f model.GuestFilter) ([]model.GuestEntry, int, error) {
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
	if f.RSVPStatus != "" {
		where = append(where, `rsvp_status = `+arg(string(f.RSVPStatus)))
	}
	if f.CheckedIn != nil {
		where = append(where, `checked_in = `+arg(*f.CheckedIn))
	}
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		where = append(where, `(guest_name ILIKE `+p+` OR email ILIKE `+p+
			` OR phone ILIKE `+p+`)`)
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM guest_entries`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count guest entries: %w", err)
	}

	page, limit := model.NormalizePage(f.Page, f.Limit, 50, 200)
	query := `SELECT ` + guestColumns + ` FROM guest_entries` + cond +
		` ORDER BY added_at DESC` +
		` LIMIT ` + arg(limit) + ` OFFSET ` + arg((page-1)*limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list guest entries: %w", err)
	}
	defer rows.Close()

	var guests []model.GuestEntry
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, 0, err
		}
		guests = append(guests, *g)
	}
	return guests, total, rows.Err()
}

// StatsByEvent summarises the guest list of one event.
func (r *GuestRepository) StatsByEvent(ctx context.Context, eventID string) (*model.GuestStats, error) {
	var s model.GuestStats
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE rsvp_status = 'confirmed'),
			COUNT(*) FILTER (WHERE rsvp_status = 'pending'),
			COUNT(*) FILTER (WHERE rsvp_status = 'declined'),
			COUNT(*) FILTER (WHERE checked_in)
		 FROM guest_entries WHERE event_id = $1`,
		eventID,
	).Scan(&s.Total, &s.Confirmed, &s.Pending, &s.Declined, &s.CheckedIn)
	if err != nil {
		return nil, fmt.Errorf("guest stats: %w", err)
	}
	return &s, nil
}
