package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the idempotent DDL for all tables. Statements run in order so
// foreign keys resolve.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'admin',
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		last_login    TIMESTAMPTZ,
		created_at    TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS hosters (
		id              UUID PRIMARY KEY,
		company_name    TEXT NOT NULL,
		contact_person  TEXT NOT NULL,
		email           TEXT NOT NULL UNIQUE,
		phone           TEXT NOT NULL,
		whatsapp_number TEXT NOT NULL DEFAULT '',
		password_hash   TEXT NOT NULL,
		website         TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'pending',
		admin_notes     TEXT NOT NULL DEFAULT '',
		commission_rate DOUBLE PRECISION NOT NULL,
		is_active       BOOLEAN NOT NULL DEFAULT TRUE,
		last_login      TIMESTAMPTZ,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id                UUID PRIMARY KEY,
		hoster_id         UUID NOT NULL REFERENCES hosters(id),
		title             TEXT NOT NULL,
		description       TEXT NOT NULL,
		short_description TEXT NOT NULL DEFAULT '',
		venue             TEXT NOT NULL,
		location          TEXT NOT NULL,
		date              TIMESTAMPTZ NOT NULL,
		time              TEXT NOT NULL DEFAULT '',
		category          TEXT NOT NULL,
		price             DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		commission_rate   DOUBLE PRECISION NOT NULL,
		images            TEXT[] NOT NULL DEFAULT '{}',
		featured_image    TEXT NOT NULL DEFAULT '',
		tags              TEXT[] NOT NULL DEFAULT '{}',
		contact_email     TEXT NOT NULL DEFAULT '',
		contact_phone     TEXT NOT NULL DEFAULT '',
		capacity          INT NOT NULL CHECK (capacity >= 1),
		booked_seats      INT NOT NULL DEFAULT 0 CHECK (booked_seats >= 0 AND booked_seats <= capacity),
		is_featured       BOOLEAN NOT NULL DEFAULT FALSE,
		carousel_position INT,
		featured_at       TIMESTAMPTZ,
		status            TEXT NOT NULL DEFAULT 'pending',
		admin_notes       TEXT NOT NULL DEFAULT '',
		views             INT NOT NULL DEFAULT 0,
		created_at        TIMESTAMPTZ NOT NULL,
		updated_at        TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id                   UUID PRIMARY KEY,
		event_id             UUID NOT NULL REFERENCES events(id),
		hoster_id            UUID NOT NULL REFERENCES hosters(id),
		full_name            TEXT NOT NULL,
		email                TEXT NOT NULL DEFAULT '',
		phone                TEXT NOT NULL,
		ticket_count         INT NOT NULL CHECK (ticket_count >= 1),
		unit_price           DOUBLE PRECISION NOT NULL,
		total_amount         DOUBLE PRECISION NOT NULL,
		commission_rate      DOUBLE PRECISION NOT NULL,
		commission_amount    DOUBLE PRECISION NOT NULL,
		net_amount           DOUBLE PRECISION NOT NULL,
		special_requirements TEXT NOT NULL DEFAULT '',
		payment_method       TEXT NOT NULL DEFAULT 'cash',
		ticket_type          TEXT NOT NULL DEFAULT 'standard',
		status               TEXT NOT NULL DEFAULT 'pending',
		payment_status       TEXT NOT NULL DEFAULT 'pending',
		created_at           TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS guest_entries (
		id             UUID PRIMARY KEY,
		event_id       UUID NOT NULL REFERENCES events(id),
		reservation_id UUID REFERENCES reservations(id),
		guest_name     TEXT NOT NULL,
		email          TEXT NOT NULL DEFAULT '',
		phone          TEXT NOT NULL,
		companions     JSONB NOT NULL DEFAULT '[]',
		-- Direct admissions cap the party at 10; entries linked to a
			-- reservation carry the booked ticket count, which may be larger.
			group_size     INT NOT NULL CHECK (group_size >= 1 AND (group_size <= 10 OR reservation_id IS NOT NULL)),
		rsvp_status    TEXT NOT NULL DEFAULT 'pending',
		checked_in     BOOLEAN NOT NULL DEFAULT FALSE,
		check_in_time  TIMESTAMPTZ,
		notes          TEXT NOT NULL DEFAULT '',
		added_by       TEXT NOT NULL DEFAULT 'public',
		added_at       TIMESTAMPTZ NOT NULL
	)`,

	// One admission record per (event, phone); the write-point uniqueness
	// the guest registry relies on.
	`CREATE UNIQUE INDEX IF NOT EXISTS guest_entries_event_phone_idx
		ON guest_entries (event_id, phone)`,

	`CREATE INDEX IF NOT EXISTS events_status_date_idx ON events (status, date)`,
	`CREATE INDEX IF NOT EXISTS events_featured_idx ON events (carousel_position) WHERE is_featured`,
	`CREATE INDEX IF NOT EXISTS reservations_event_idx ON reservations (event_id)`,
	`CREATE INDEX IF NOT EXISTS reservations_phone_idx ON reservations (phone)`,
	`CREATE INDEX IF NOT EXISTS guest_entries_event_idx ON guest_entries (event_id)`,
}

// Migrate applies the schema. All statements are idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d: %w", i+1, err)
		}
	}
	return nil
}
