package model

import "time"

// User is a front-of-house staff account.  The Role determines what a
// session may do: MANAGER accounts administer tables, HOST accounts
// work the reservation book.  Only a bcrypt hash of the password is
// ever stored.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role (MANAGER or HOST)
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
