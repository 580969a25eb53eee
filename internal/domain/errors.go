package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the lookup operations. Repositories translate their
// storage-level "no rows" conditions into these so that callers can test
// with errors.Is without knowing the storage engine.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrStockNotFound   = errors.New("stock not found")
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrInvalidInput marks request validation failures so the transport
	// layer can map them to a client error instead of a server error.
	ErrInvalidInput = errors.New("invalid input")
)

// QuoteUnavailableError reports that the market quote lookup failed for a
// symbol during a valuation. The whole valuation fails with this error; a
// partial result with a zeroed total would corrupt the portfolio value
// without signaling a problem.
type QuoteUnavailableError struct {
	Symbol string
	Err    error
}

func (e *QuoteUnavailableError) Error() string {
	return fmt.Sprintf("quote unavailable for %s: %v", e.Symbol, e.Err)
}

func (e *QuoteUnavailableError) Unwrap() error {
	return e.Err
}
