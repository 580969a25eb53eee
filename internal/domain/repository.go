package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by its ID
	// Returns ErrUserNotFound if no such user exists
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByUsername retrieves a user by its unique username
	// Returns ErrUserNotFound if no such user exists
	GetByUsername(ctx context.Context, username string) (*User, error)

	// List retrieves all users
	List(ctx context.Context) ([]*User, error)
}

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// Create creates a new account with its billing address
	Create(ctx context.Context, account *Account) error

	// GetByID retrieves an account by its ID
	// Returns ErrAccountNotFound if no such account exists
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// ListByUser retrieves all accounts owned by a user
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Account, error)
}

// StockRepository defines the interface for stock catalog persistence operations
type StockRepository interface {
	// Create creates a new stock catalog entry
	Create(ctx context.Context, stock *Stock) error

	// GetBySymbol retrieves a stock by its ticker symbol
	// Returns ErrStockNotFound if no such stock exists
	GetBySymbol(ctx context.Context, symbol string) (*Stock, error)

	// List retrieves all stocks in the catalog
	List(ctx context.Context) ([]*Stock, error)
}

// HoldingRepository defines the interface for holding persistence operations
type HoldingRepository interface {
	// Upsert inserts the holding, or overwrites the quantity of the
	// existing holding for the same (account, symbol) pair. The storage
	// layer's composite primary key guarantees at most one row per pair;
	// concurrent upserts resolve last-writer-wins.
	Upsert(ctx context.Context, holding *Holding) error

	// ListByAccount retrieves the account's holdings in insertion order.
	// Overwriting a quantity does not change a holding's position.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Holding, error)

	// Delete removes the holding for the (account, symbol) pair
	// Returns ErrHoldingNotFound if the pair does not exist
	Delete(ctx context.Context, accountID uuid.UUID, symbol string) error
}
