package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user in the domain layer.
// A user owns zero or more brokerage accounts.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, never the plaintext password
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate ensures the user adheres to domain rules
// Returns an error if validation fails
func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username cannot be empty")
	}
	if u.Email == "" {
		return errors.New("email cannot be empty")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash cannot be empty")
	}
	return nil
}
