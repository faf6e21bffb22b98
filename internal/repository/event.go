package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const eventColumns = `id, hoster_id, title, description, short_description, venue,
	location, date, time, category, price, commission_rate, images,
	featured_image, tags, contact_email, contact_phone, capacity, booked_seats,
	is_featured, carousel_position, featured_at, status, admin_notes, views,
	created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID, &e.HosterID, &e.Title, &e.Description, &e.ShortDescription,
		&e.Venue, &e.Location, &e.Date, &e.Time, &e.Category, &e.Price,
		&e.CommissionRate, &e.Images, &e.FeaturedImage, &e.Tags,
		&e.ContactEmail, &e.ContactPhone, &e.Capacity, &e.BookedSeats,
		&e.IsFeatured, &e.CarouselPosition, &e.FeaturedAt, &e.Status,
		&e.AdminNotes, &e.Views, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &e, nil
}

// EventRepository handles persistence for events, including the seat
// inventory critical section.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO events (`+eventColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,
		         $18,$19,$20,$21,$22,$23,$24,$25,$26,$27)`,
		e.ID, e.HosterID, e.Title, e.Description, e.ShortDescription, e.Venue,
		e.Location, e.Date, e.Time, e.Category, e.Price, e.CommissionRate,
		e.Images, e.FeaturedImage, e.Tags, e.ContactEmail, e.ContactPhone,
		e.Capacity, e.BookedSeats, e.IsFeatured, e.CarouselPosition,
		e.FeaturedAt, e.Status, e.AdminNotes, e.Views, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID returns a single event or ErrNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	return scanEvent(row)
}

// Update persists all mutable listing fields of an event. Seat counts and
// carousel fields are owned by ReserveSeats/ReleaseSeats and the carousel
// repository and are not written here.
func (r *EventRepository) Update(ctx context.Context, e *model.Event) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events SET
			title = $2, description = $3, short_description = $4, venue = $5,
			location = $6, date = $7, time = $8, category = $9, price = $10,
			images = $11, featured_image = $12, tags = $13,
			contact_email = $14, contact_phone = $15, capacity = $16,
			status = $17, admin_notes = $18, updated_at = $19
		 WHERE id = $1`,
		e.ID, e.Title, e.Description, e.ShortDescription, e.Venue, e.Location,
		e.Date, e.Time, e.Category, e.Price, e.Images, e.FeaturedImage, e.Tags,
		e.ContactEmail, e.ContactPhone, e.Capacity, e.Status, e.AdminNotes,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an event. Callers are responsible for the
// no-active-reservations policy check.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns events matching the filter plus the unpaginated total.
func (r *EventRepository) List(ctx context.Context, f model.EventFilter) ([]model.Event, int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		where = append(where, `status = ANY(`+arg(statuses)+`)`)
	}
	if f.HosterID != "" {
		where = append(where, `hoster_id = `+arg(f.HosterID))
	}
	if f.Category != "" {
		where = append(where, `category = `+arg(f.Category))
	}
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		where = append(where, `(title ILIKE `+p+` OR description ILIKE `+p+
			` OR venue ILIKE `+p+` OR location ILIKE `+p+`)`)
	}
	if f.FutureOnly {
		where = append(where, `date >= `+arg(time.Now().UTC()))
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	page, limit := model.NormalizePage(f.Page, f.Limit, 12, 100)
	query := `SELECT ` + eventColumns + ` FROM events` + cond +
		` ORDER BY date ASC, created_at DESC` +
		` LIMIT ` + arg(limit) + ` OFFSET ` + arg((page-1)*limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, *e)
	}
	return events, total, rows.Err()
}

// Categories returns the distinct categories of bookable future events.
func (r *EventRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT category FROM events
		 WHERE status = ANY($1) AND date >= $2
		 ORDER BY category`,
		[]string{string(model.EventStatusUpcoming), string(model.EventStatusOngoing)},
		time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// IncrementViews bumps the event's view counter.
func (r *EventRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE events SET views = views + 1 WHERE id = $1`, id)
	return err
}

// ReserveSeats atomically books count seats against the event.
//
// Two concurrent reservations must not both pass the availability check
// against a stale read, so the event row is locked with SELECT … FOR UPDATE
// and the read-check-write happens inside one transaction. The returned
// event reflects the post-reservation state and carries the price and
// commission-rate snapshot taken under the same lock.
func (r *EventRepository) ReserveSeats(ctx context.Context, eventID string, count int) (*model.Event, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	e, err := scanEvent(tx.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, eventID))
	if err != nil {
		return nil, err
	}

	if !e.Status.Bookable() {
		return nil, ErrNotBookable
	}
	if count > e.AvailableSeats() {
		return nil, ErrCapacityExceeded
	}

	_, err = tx.Exec(ctx,
		`UPDATE events SET booked_seats = booked_seats + $2, updated_at = $3
		 WHERE id = $1`,
		eventID, count, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("increment booked_seats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	e.BookedSeats += count
	return e, nil
}

// ReleaseSeats returns count seats to the event's inventory, floored at
// zero. Used on cancellation and refund.
func (r *EventRepository) ReleaseSeats(ctx context.Context, eventID string, count int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events SET booked_seats = GREATEST(booked_seats - $2, 0),
			updated_at = $3
		 WHERE id = $1`,
		eventID, count, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("release seats: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
