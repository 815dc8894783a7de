package domain

import "time"

// User represents an account holder who owns invoices.
type User struct {
	UserID       string `json:"id"` // Primary Key (UUID)
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
