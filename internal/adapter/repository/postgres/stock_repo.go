package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jpereira/stockfolio-backend/internal/domain"
)

// stockRepository implements domain.StockRepository
type stockRepository struct {
	db *DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *DB) domain.StockRepository {
	return &stockRepository{db: db}
}

// Create creates a new stock catalog entry
func (r *stockRepository) Create(ctx context.Context, stock *domain.Stock) error {
	query := `
		INSERT INTO stocks (symbol, description)
		VALUES ($1, $2)
	`

	_, err := r.db.ExecContext(ctx, query, stock.Symbol, stock.Description)
	if err != nil {
		return fmt.Errorf("failed to create stock: %w", err)
	}

	return nil
}

// GetBySymbol retrieves a stock by its ticker symbol
func (r *stockRepository) GetBySymbol(ctx context.Context, symbol string) (*domain.Stock, error) {
	query := `
		SELECT symbol, description
		FROM stocks
		WHERE symbol = $1
	`

	var stock domain.Stock
	err := r.db.QueryRowContext(ctx, query, symbol).Scan(&stock.Symbol, &stock.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStockNotFound
		}
		return nil, fmt.Errorf("failed to get stock by symbol: %w", err)
	}

	return &stock, nil
}

// List retrieves all stocks in the catalog
func (r *stockRepository) List(ctx context.Context) ([]*domain.Stock, error) {
	query := `
		SELECT symbol, description
		FROM stocks
		ORDER BY symbol
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}
	defer rows.Close()

	var stocks []*domain.Stock
	for rows.Next() {
		var stock domain.Stock
		if err := rows.Scan(&stock.Symbol, &stock.Description); err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		stocks = append(stocks, &stock)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock rows: %w", err)
	}

	return stocks, nil
}
