package holding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jpereira/stockfolio-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// defaultQuoteTimeout bounds each individual quote lookup so a stalled
// provider cannot hang a valuation request indefinitely.
const defaultQuoteTimeout = 5 * time.Second

// ValuationLine is one row of a portfolio valuation: a held symbol, the
// stored quantity, and the current total (quantity x latest market price).
// Lines are computed fresh on every request and never persisted.
type ValuationLine struct {
	Symbol   string
	Quantity int64
	Total    decimal.Decimal
}

// Service handles holding management and portfolio valuation
type Service struct {
	AccountRepo  domain.AccountRepository
	StockRepo    domain.StockRepository
	HoldingRepo  domain.HoldingRepository
	Quotes       domain.QuoteProvider
	QuoteTimeout time.Duration
}

// NewService creates a new holding Service instance
// quoteTimeout bounds each quote provider call; zero selects the default
func NewService(
	accountRepo domain.AccountRepository,
	stockRepo domain.StockRepository,
	holdingRepo domain.HoldingRepository,
	quotes domain.QuoteProvider,
	quoteTimeout time.Duration,
) *Service {
	if quoteTimeout <= 0 {
		quoteTimeout = defaultQuoteTimeout
	}
	return &Service{
		AccountRepo:  accountRepo,
		StockRepo:    stockRepo,
		HoldingRepo:  holdingRepo,
		Quotes:       quotes,
		QuoteTimeout: quoteTimeout,
	}
}

// Associate links a stock to an account at the given held quantity.
// Logic:
//  1. Validate inputs (parseable account ID, non-empty symbol, quantity >= 0)
//  2. Verify the account exists (checked before the stock: if both are
//     missing, the account failure is the one reported)
//  3. Verify the stock exists in the catalog
//  4. Upsert the holding keyed by (account, symbol); re-associating the
//     same pair overwrites the quantity instead of creating a duplicate
func (s *Service) Associate(ctx context.Context, accountID, stockSymbol string, quantity int64) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return fmt.Errorf("invalid account id %q: %w", accountID, domain.ErrInvalidInput)
	}

	symbol := normalizeSymbol(stockSymbol)
	if symbol == "" {
		return fmt.Errorf("stock symbol cannot be empty: %w", domain.ErrInvalidInput)
	}
	if quantity < 0 {
		return fmt.Errorf("quantity cannot be negative: %w", domain.ErrInvalidInput)
	}

	if _, err := s.AccountRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.StockRepo.GetBySymbol(ctx, symbol); err != nil {
		return err
	}

	holding := &domain.Holding{
		AccountID: id,
		Symbol:    symbol,
		Quantity:  quantity,
	}
	if err := s.HoldingRepo.Upsert(ctx, holding); err != nil {
		return fmt.Errorf("failed to save holding: %w", err)
	}

	return nil
}

// Valuate computes the current monetary value of every holding in the
// account, in holding insertion order.
// Logic: load the account's holdings, fetch the latest quote per symbol
// (one call per holding, sequentially, in order) and emit one line per
// holding with total = quantity x price.
//
// If any quote lookup fails the whole valuation fails with a
// QuoteUnavailableError naming the symbol. A partial list with a zero
// total would misstate the portfolio value, so no line is ever emitted
// for a symbol without a price.
func (s *Service) Valuate(ctx context.Context, accountID string) ([]ValuationLine, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, fmt.Errorf("invalid account id %q: %w", accountID, domain.ErrInvalidInput)
	}

	if _, err := s.AccountRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	holdings, err := s.HoldingRepo.ListByAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings: %w", err)
	}

	lines := make([]ValuationLine, 0, len(holdings))
	for _, h := range holdings {
		quote, err := s.fetchQuote(ctx, h.Symbol)
		if err != nil {
			return nil, &domain.QuoteUnavailableError{Symbol: h.Symbol, Err: err}
		}

		total := quote.Price.Mul(decimal.NewFromInt(h.Quantity))
		lines = append(lines, ValuationLine{
			Symbol:   h.Symbol,
			Quantity: h.Quantity,
			Total:    total,
		})
	}

	return lines, nil
}

// Remove deletes the holding for the (account, symbol) pair.
// Mirrors Associate: the account is validated first, then the pair is
// deleted by its composite key; a missing pair yields ErrHoldingNotFound.
func (s *Service) Remove(ctx context.Context, accountID, stockSymbol string) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return fmt.Errorf("invalid account id %q: %w", accountID, domain.ErrInvalidInput)
	}

	symbol := normalizeSymbol(stockSymbol)
	if symbol == "" {
		return fmt.Errorf("stock symbol cannot be empty: %w", domain.ErrInvalidInput)
	}

	if _, err := s.AccountRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.HoldingRepo.Delete(ctx, id, symbol)
}

// fetchQuote wraps a single provider call in the per-call timeout.
func (s *Service) fetchQuote(ctx context.Context, symbol string) (domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.QuoteTimeout)
	defer cancel()
	return s.Quotes.GetQuote(ctx, symbol)
}

// normalizeSymbol canonicalizes a ticker symbol so that the composite
// (account, symbol) key is stable regardless of the caller's casing.
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
