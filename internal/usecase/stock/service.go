package stock

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpereira/stockfolio-backend/internal/domain"
)

// CreateStockInput represents the input for creating a stock catalog entry
type CreateStockInput struct {
	Symbol      string
	Description string
}

// Service handles stock catalog operations
type Service struct {
	StockRepo domain.StockRepository
}

// NewService creates a new stock Service instance
func NewService(stockRepo domain.StockRepository) *Service {
	return &Service{StockRepo: stockRepo}
}

// Create registers a stock in the catalog. The uppercased ticker symbol is
// the identifier itself, so the same symbol cannot be registered twice.
func (s *Service) Create(ctx context.Context, input CreateStockInput) (*domain.Stock, error) {
	stock := &domain.Stock{
		Symbol:      strings.ToUpper(strings.TrimSpace(input.Symbol)),
		Description: input.Description,
	}
	if err := stock.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}

	if err := s.StockRepo.Create(ctx, stock); err != nil {
		return nil, fmt.Errorf("failed to create stock: %w", err)
	}

	return stock, nil
}

// GetBySymbol returns the stock for the given ticker symbol
func (s *Service) GetBySymbol(ctx context.Context, symbol string) (*domain.Stock, error) {
	return s.StockRepo.GetBySymbol(ctx, strings.ToUpper(strings.TrimSpace(symbol)))
}

// List returns all stocks in the catalog
func (s *Service) List(ctx context.Context) ([]*domain.Stock, error) {
	stocks, err := s.StockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}
	return stocks, nil
}
