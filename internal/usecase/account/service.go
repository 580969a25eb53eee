package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jpereira/stockfolio-backend/internal/domain"
)

// CreateAccountInput represents the input for creating an account
type CreateAccountInput struct {
	UserID      uuid.UUID
	Description string
	Street      string
	Number      int
}

// Service handles account management operations
type Service struct {
	UserRepo    domain.UserRepository
	AccountRepo domain.AccountRepository
}

// NewService creates a new account Service instance
func NewService(userRepo domain.UserRepository, accountRepo domain.AccountRepository) *Service {
	return &Service{
		UserRepo:    userRepo,
		AccountRepo: accountRepo,
	}
}

// Create opens a new brokerage account for an existing user.
// The billing address is stored with the account; it has no separate identity.
func (s *Service) Create(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if _, err := s.UserRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Description: input.Description,
		BillingAddress: domain.BillingAddress{
			Street: input.Street,
			Number: input.Number,
		},
	}
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}

	if err := s.AccountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// ListByUser returns all accounts owned by the user
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	if _, err := s.UserRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	accounts, err := s.AccountRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}
