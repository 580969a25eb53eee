package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpereira/stockfolio-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// ErrUsernameTaken is returned when registering a username that already exists
var ErrUsernameTaken = errors.New("username already taken")

// CreateUserInput represents the input for registering a user
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// Service handles user registration operations
type Service struct {
	UserRepo domain.UserRepository
}

// NewService creates a new user Service instance
func NewService(userRepo domain.UserRepository) *Service {
	return &Service{UserRepo: userRepo}
}

// Create registers a new user with a bcrypt-hashed password
func (s *Service) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" {
		return nil, fmt.Errorf("username and email are required: %w", domain.ErrInvalidInput)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("password is required: %w", domain.ErrInvalidInput)
	}

	if _, err := s.UserRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID returns the user for the given ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.UserRepo.GetByID(ctx, id)
}

// List returns all registered users
func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.UserRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
