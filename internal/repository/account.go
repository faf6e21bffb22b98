package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const hosterColumns = `id, company_name, contact_person, email, phone,
	whatsapp_number, password_hash, website, status, admin_notes,
	commission_rate, is_active, last_login, created_at, updated_at`

func scanHoster(row pgx.Row) (*model.Hoster, error) {
	var h model.Hoster
	err := row.Scan(
		&h.ID, &h.CompanyName, &h.ContactPerson, &h.Email, &h.Phone,
		&h.WhatsAppNumber, &h.PasswordHash, &h.Website, &h.Status,
		&h.AdminNotes, &h.CommissionRate, &h.IsActive, &h.LastLogin,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan hoster: %w", err)
	}
	return &h, nil
}

// HosterRepository handles persistence for hoster accounts.
type HosterRepository struct {
	db *pgxpool.Pool
}

// NewHosterRepository constructs a HosterRepository.
func NewHosterRepository(db *pgxpool.Pool) *HosterRepository {
	return &HosterRepository{db: db}
}

// Create inserts a new hoster. A duplicate email surfaces as ErrEmailTaken.
func (r *HosterRepository) Create(ctx context.Context, h *model.Hoster) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO hosters (`+hosterColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		h.ID, h.CompanyName, h.ContactPerson, h.Email, h.Phone,
		h.WhatsAppNumber, h.PasswordHash, h.Website, h.Status, h.AdminNotes,
		h.CommissionRate, h.IsActive, h.LastLogin, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert hoster: %w", err)
	}
	return nil
}

// GetByID returns a hoster or ErrNotFound.
func (r *HosterRepository) GetByID(ctx context.Context, id string) (*model.Hoster, error) {
	row := r.db.QueryRow(ctx, `SELECT `+hosterColumns+` FROM hosters WHERE id = $1`, id)
	return scanHoster(row)
}

// GetByEmail returns a hoster by login email or ErrNotFound.
func (r *HosterRepository) GetByEmail(ctx context.Context, email string) (*model.Hoster, error) {
	row := r.db.QueryRow(ctx, `SELECT `+hosterColumns+` FROM hosters WHERE email = $1`, email)
	return scanHoster(row)
}

// Update persists the mutable profile and moderation fields of a hoster.
func (r *HosterRepository) Update(ctx context.Context, h *model.Hoster) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE hosters SET
			company_name = $2, contact_person = $3, phone = $4,
			whatsapp_number = $5, website = $6, status = $7, admin_notes = $8,
			commission_rate = $9, is_active = $10, last_login = $11,
			updated_at = $12
		 WHERE id = $1`,
		h.ID, h.CompanyName, h.ContactPerson, h.Phone, h.WhatsAppNumber,
		h.Website, h.Status, h.AdminNotes, h.CommissionRate, h.IsActive,
		h.LastLogin, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update hoster: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns hosters filtered by status and search text, newest first.
func (r *HosterRepository) List(ctx context.Context, status model.HosterStatus, search string, page, limit int) ([]model.Hoster, int, error) {
	var (
		where string
		args  []any
	)
	if status != "" {
		args = append(args, string(status))
		where = ` WHERE status = $1`
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		p := fmt.Sprintf("$%d", len(args))
		clause := `(company_name ILIKE ` + p + ` OR email ILIKE ` + p +
			` OR contact_person ILIKE ` + p + ` OR phone ILIKE ` + p + `)`
		if where == "" {
			where = ` WHERE ` + clause
		} else {
			where += ` AND ` + clause
		}
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM hosters`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count hosters: %w", err)
	}

	page, limit = model.NormalizePage(page, limit, 10, 100)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(
		`SELECT `+hosterColumns+` FROM hosters`+where+
			` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list hosters: %w", err)
	}
	defer rows.Close()

	var hosters []model.Hoster
	for rows.Next() {
		h, err := scanHoster(rows)
		if err != nil {
			return nil, 0, err
		}
		hosters = append(hosters, *h)
	}
	return hosters, total, rows.Err()
}

// AdminRepository handles persistence for admin accounts.
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository constructs an AdminRepository.
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `id, username, email, password_hash, role, is_active, last_login, created_at`

func scanAdmin(row pgx.Row) (*model.Admin, error) {
	var a model.Admin
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Role,
		&a.IsActive, &a.LastLogin, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}
	return &a, nil
}

// Create inserts a new admin account.
func (r *AdminRepository) Create(ctx context.Context, a *model.Admin) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO admins (`+adminColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.Username, a.Email, a.PasswordHash, a.Role, a.IsActive,
		a.LastLogin, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByID returns an admin or ErrNotFound.
func (r *AdminRepository) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	row := r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
	return scanAdmin(row)
}

// GetByEmail returns an admin by login email or ErrNotFound.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	row := r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = $1`, email)
	return scanAdmin(row)
}

// TouchLogin records a successful login.
func (r *AdminRepository) TouchLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE admins SET last_login = $2 WHERE id = $1`, id, at)
	return err
}
