package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// carouselLockKey serialises all carousel mutations. The featured set is a
// cross-event invariant (bounded size, dense positions), so a single
// advisory lock scoped to "the carousel" is held for the whole transaction.
const carouselLockKey = 0x43524F53 // "CROS"

// CarouselRepository owns the featured subset of events and its ordering.
type CarouselRepository struct {
	db *pgxpool.Pool
}

// NewCarouselRepository constructs a CarouselRepository.
func NewCarouselRepository(db *pgxpool.Pool) *CarouselRepository {
	return &CarouselRepository{db: db}
}

// featureCheck validates the add-side membership rules against state read
// under the carousel lock: not already featured, still eligible, and room
// left in the bounded set.
func featureCheck(e *model.Event, featuredCount int, now time.Time) error {
	if e.IsFeatured {
		return ErrAlreadyFeatured
	}
	if !e.CarouselEligible(now) {
		return ErrNotEligible
	}
	if featuredCount >= model.CarouselCapacity {
		return ErrCarouselFull
	}
	return nil
}

// nextPosition appends to the end of the display order.
func nextPosition(maxPos *int) int {
	if maxPos == nil {
		return 1
	}
	return *maxPos + 1
}

func (r *CarouselRepository) begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, carouselLockKey); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("acquire carousel lock: %w", err)
	}
	return tx, nil
}

func (r *CarouselRepository) featuredTx(ctx context.Context, tx pgx.Tx) ([]model.Event, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE is_featured
		 ORDER BY carousel_position ASC, date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list featured: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// Add features the event at the end of the carousel. The event must exist,
// be carousel-eligible, not already be featured, and the carousel must not
// be full.
func (r *CarouselRepository) Add(ctx context.Context, eventID string) (*model.Event, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	e, err := scanEvent(tx.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, eventID))
	if err != nil {
		return nil, err
	}
	var count int
	var maxPos *int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*), MAX(carousel_position) FROM events WHERE is_featured`).
		Scan(&count, &maxPos)
	if err != nil {
		return nil, fmt.Errorf("count featured: %w", err)
	}
	if err := featureCheck(e, count, time.Now()); err != nil {
		return nil, err
	}

	newPos := nextPosition(maxPos)
	now := time.Now().UTC()
	_, err = tx.Exec(ctx,
		`UPDATE events SET is_featured = TRUE, carousel_position = $2,
			featured_at = $3, updated_at = $3
		 WHERE id = $1`,
		eventID, newPos, now,
	)
	if err != nil {
		return nil, fmt.Errorf("feature event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	e.IsFeatured = true
	e.CarouselPosition = &newPos
	e.FeaturedAt = &now
	return e, nil
}

// Remove unfeatures the event and re-packs the remaining members into a
// dense 1..K sequence in a single transaction, so no non-dense state is
// observable outside it.
func (r *CarouselRepository) Remove(ctx context.Context, eventID string) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	e, err := scanEvent(tx.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, eventID))
	if err != nil {
		return err
	}
	if !e.IsFeatured {
		return ErrNotFeatured
	}

	now := time.Now().UTC()
	_, err = tx.Exec(ctx,
		`UPDATE events SET is_featured = FALSE, carousel_position = NULL,
			featured_at = NULL, updated_at = $2
		 WHERE id = $1`,
		eventID, now,
	)
	if err != nil {
		return fmt.Errorf("unfeature event: %w", err)
	}

	remaining, err := r.featuredTx(ctx, tx)
	if err != nil {
		return err
	}
	for _, a := range model.RepackPositions(remaining) {
		_, err = tx.Exec(ctx,
			`UPDATE events SET carousel_position = $2, updated_at = $3 WHERE id = $1`,
			a.EventID, a.Position, now,
		)
		if err != nil {
			return fmt.Errorf("repack position: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Reorder applies caller-supplied absolute positions. Every referenced
// event must exist and be featured; positions are applied verbatim and are
// not re-packed, matching the admin UI contract.
func (r *CarouselRepository) Reorder(ctx context.Context, items []model.CarouselAssignment) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	for _, item := range items {
		var featured bool
		err := tx.QueryRow(ctx,
			`SELECT is_featured FROM events WHERE id = $1 FOR UPDATE`, item.EventID).
			Scan(&featured)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("lock event: %w", err)
		}
		if !featured {
			return ErrNotFeatured
		}
	}
	for _, item := range items {
		_, err = tx.Exec(ctx,
			`UPDATE events SET carousel_position = $2, updated_at = $3 WHERE id = $1`,
			item.EventID, item.Position, now,
		)
		if err != nil {
			return fmt.Errorf("update position: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List returns the carousel in display order. With publicOnly set it is
// restricted to bookable future events, matching the public endpoint.
func (r *CarouselRepository) List(ctx context.Context, publicOnly bool) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE is_featured`
	var args []any
	if publicOnly {
		query += ` AND status = ANY($1) AND date >= $2`
		args = append(args,
			[]string{string(model.EventStatusUpcoming), string(model.EventStatusOngoing)},
			time.Now().UTC())
	}
	query += ` ORDER BY carousel_position ASC, date ASC LIMIT ` +
		fmt.Sprintf("%d", model.CarouselCapacity)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list carousel: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}
