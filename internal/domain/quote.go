package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Quote is the latest externally-reported market price for a stock symbol.
// Quotes are ephemeral: they are fetched per request and never persisted or
// cached, so repeated valuations re-fetch every price.
type Quote struct {
	Symbol string
	Price  decimal.Decimal
}

// QuoteProvider returns the most recent regular-market price for a symbol.
// Implementations carry their own access credential, supplied at
// construction time. Invalid symbols, rate limits and transport failures
// are all collapsed into a single error outcome with an underlying cause.
type QuoteProvider interface {
	GetQuote(ctx context.Context, symbol string) (Quote, error)
}
