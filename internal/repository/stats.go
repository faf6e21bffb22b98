package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardStats aggregates platform-wide counters for the admin dashboard.
type DashboardStats struct {
	TotalEvents   int `json:"total_events"`
	LiveEvents    int `json:"live_events"`
	PendingEvents int `json:"pending_events"`

	TotalHosters    int `json:"total_hosters"`
	PendingHosters  int `json:"pending_hosters"`
	ApprovedHosters int `json:"approved_hosters"`

	TotalReservations     int `json:"total_reservations"`
	ConfirmedReservations int `json:"confirmed_reservations"`
	PendingReservations   int `json:"pending_reservations"`

	TotalGuests     int `json:"total_guests"`
	CheckedInGuests int `json:"checked_in_guests"`

	TotalRevenue      float64 `json:"total_revenue"`
	TotalCommission   float64 `json:"total_commission"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	MonthlyCommission float64 `json:"monthly_commission"`
}

// HosterStats aggregates per-hoster revenue and booking counters.
type HosterStats struct {
	TotalEvents           int     `json:"total_events"`
	TotalReservations     int     `json:"total_reservations"`
	ConfirmedReservations int     `json:"confirmed_reservations"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalCommission       float64 `json:"total_commission"`
	MonthlyRevenue        float64 `json:"monthly_revenue"`
	MonthlyReservations   int     `json:"monthly_reservations"`
}

// StatsRepository runs read-only aggregation queries. It sits outside the
// booking engine and holds no invariants of its own.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository constructs a StatsRepository.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Dashboard collects the admin dashboard counters.
func (r *StatsRepository) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var s DashboardStats

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status IN ($1, $2)),
			COUNT(*) FILTER (WHERE status = $3)
		 FROM events`,
		model.EventStatusUpcoming, model.EventStatusOngoing, model.EventStatusPending,
	).Scan(&s.TotalEvents, &s.LiveEvents, &s.PendingEvents)
	if err != nil {
		return nil, fmt.Errorf("event stats: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved')
		 FROM hosters`,
	).Scan(&s.TotalHosters, &s.PendingHosters, &s.ApprovedHosters)
	if err != nil {
		return nil, fmt.Errorf("hoster stats: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'confirmed'),
			COUNT(*) FILTER (WHERE status = 'pending')
		 FROM reservations`,
	).Scan(&s.TotalReservations, &s.ConfirmedReservations, &s.PendingReservations)
	if err != nil {
		return nil, fmt.Errorf("reservation stats: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE checked_in) FROM guest_entries`,
	).Scan(&s.TotalGuests, &s.CheckedInGuests)
	if err != nil {
		return nil, fmt.Errorf("guest stats: %w", err)
	}

	// Revenue counts only confirmed, paid reservations.
	err = r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(commission_amount), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE created_at >= $1), 0),
			COALESCE(SUM(commission_amount) FILTER (WHERE created_at >= $1), 0)
		 FROM reservations
		 WHERE status = 'confirmed' AND payment_status = 'paid'`,
		monthStart(time.Now().UTC()),
	).Scan(&s.TotalRevenue, &s.TotalCommission, &s.MonthlyRevenue, &s.MonthlyCommission)
	if err != nil {
		return nil, fmt.Errorf("revenue stats: %w", err)
	}

	return &s, nil
}

// HosterDashboard collects the counters scoped to one hoster.
func (r *StatsRepository) HosterDashboard(ctx context.Context, hosterID string) (*HosterStats, error) {
	var s HosterStats

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM events WHERE hoster_id = $1`, hosterID,
	).Scan(&s.TotalEvents)
	if err != nil {
		return nil, fmt.Errorf("hoster event count: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'confirmed'),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'confirmed' AND payment_status = 'paid'), 0),
			COALESCE(SUM(commission_amount) FILTER (WHERE status = 'confirmed' AND payment_status = 'paid'), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE created_at >= $2), 0),
			COUNT(*) FILTER (WHERE created_at >= $2)
		 FROM reservations WHERE hoster_id = $1`,
		hosterID, monthStart(time.Now().UTC()),
	).Scan(&s.TotalReservations, &s.ConfirmedReservations, &s.TotalRevenue,
		&s.TotalCommission, &s.MonthlyRevenue, &s.MonthlyReservations)
	if err != nil {
		return nil, fmt.Errorf("hoster reservation stats: %w", err)
	}

	return &s, nil
}
