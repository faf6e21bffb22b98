package model

import "time"

// HosterStatus is the approval state of a hoster account.
type HosterStatus string

const (
	HosterPending   HosterStatus = "pending"
	HosterApproved  HosterStatus = "approved"
	HosterRejected  HosterStatus = "rejected"
	HosterSuspended HosterStatus = "suspended"
)

// Valid reports whether s is a known hoster status.
func (s HosterStatus) Valid() bool {
	switch s {
	case HosterPending, HosterApproved, HosterRejected, HosterSuspended:
		return true
	}
	return false
}

// Hoster is a third-party organisation that lists events.
type Hoster struct {
	ID             string       `json:"id"`
	CompanyName    string       `json:"company_name"`
	ContactPerson  string       `json:"contact_person"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	WhatsAppNumber string       `json:"whatsapp_number,omitempty"`
	PasswordHash   string       `json:"-"`
	Website        string       `json:"website,omitempty"`
	Status         HosterStatus `json:"status"`
	AdminNotes     string       `json:"admin_notes,omitempty"`
	CommissionRate float64      `json:"commission_rate"`
	IsActive       bool         `json:"is_active"`
	LastLogin      *time.Time   `json:"last_login,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Admin is a platform operator account.
type Admin struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
