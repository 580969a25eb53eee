package domain

import (
	"errors"

	"github.com/google/uuid"
)

// BillingAddress is the billing address attached to an account.
// It has no identity of its own; it lives and dies with the account.
type BillingAddress struct {
	Street string
	Number int
}

// Account represents a brokerage account in the domain layer.
// An account belongs to one user and owns zero or more holdings.
// The core valuation flow only ever reads accounts, it never mutates them.
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Description    string
	BillingAddress BillingAddress
}

// Validate ensures the account adheres to domain rules
// Returns an error if validation fails
func (a *Account) Validate() error {
	if a.Description == "" {
		return errors.New("account description cannot be empty")
	}
	if a.UserID == uuid.Nil {
		return errors.New("account must reference a user")
	}
	return nil
}
