package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Holding associates a stock with an account at a held quantity.
// Its identity is the (AccountID, Symbol) pair: at most one holding exists
// per pair, and associating the same pair again overwrites the quantity.
// Account and Stock are referenced, not owned; both outlive the holding.
type Holding struct {
	AccountID uuid.UUID
	Symbol    string
	Quantity  int64
}

// Validate ensures the holding adheres to domain rules
// Returns an error if validation fails
func (h *Holding) Validate() error {
	if h.AccountID == uuid.Nil {
		return errors.New("holding must reference an account")
	}
	if h.Symbol == "" {
		return errors.New("holding must reference a stock symbol")
	}
	if h.Quantity < 0 {
		return errors.New("holding quantity cannot be negative")
	}
	return nil
}
