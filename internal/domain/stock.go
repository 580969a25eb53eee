package domain

import "errors"

// Stock represents a catalog entry for a tradeable stock.
// The ticker symbol is the identifier itself; there is no surrogate key.
type Stock struct {
	Symbol      string
	Description string
}

// Validate ensures the stock adheres to domain rules
// Returns an error if validation fails
func (s *Stock) Validate() error {
	if s.Symbol == "" {
		return errors.New("stock symbol cannot be empty")
	}
	return nil
}
