package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jpereira/stockfolio-backend/internal/domain"
)

// holdingRepository implements domain.HoldingRepository
type holdingRepository struct {
	db *DB
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(db *DB) domain.HoldingRepository {
	return &holdingRepository{db: db}
}

// Upsert inserts the holding or overwrites the quantity of an existing
// (account, symbol) pair. The composite primary key makes the operation
// atomic; concurrent writers resolve last-writer-wins. created_at is left
// untouched on conflict so the account's listing order stays stable.
func (r *holdingRepository) Upsert(ctx context.Context, holding *domain.Holding) error {
	query := `
		INSERT INTO account_stocks (account_id, symbol, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, symbol)
		DO UPDATE SET quantity = EXCLUDED.quantity
	`

	_, err := r.db.ExecContext(ctx, query,
		holding.AccountID,
		holding.Symbol,
		holding.Quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert holding: %w", err)
	}

	return nil
}

// ListByAccount retrieves the account's holdings in insertion order
func (r *holdingRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Holding, error) {
	query := `
		SELECT account_id, symbol, quantity
		FROM account_stocks
		WHERE account_id = $1
		ORDER BY created_at, symbol
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	var holdings []*domain.Holding
	for rows.Next() {
		var holding domain.Holding
		if err := rows.Scan(&holding.AccountID, &holding.Symbol, &holding.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan holding row: %w", err)
		}
		holdings = append(holdings, &holding)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holding rows: %w", err)
	}

	return holdings, nil
}

// Delete removes the holding for the (account, symbol) pair
func (r *holdingRepository) Delete(ctx context.Context, accountID uuid.UUID, symbol string) error {
	query := `
		DELETE FROM account_stocks
		WHERE account_id = $1 AND symbol = $2
	`

	result, err := r.db.ExecContext(ctx, query, accountID, symbol)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrHoldingNotFound
	}

	return nil
}
