package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table. PasswordHash is NULL for accounts
// created through an external identity provider.
type User struct {
	UserID       string         `db:"user_id"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	PasswordHash sql.NullString `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
