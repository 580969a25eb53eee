package account

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jpereira/stockfolio-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// MockAccountRepository is a mock implementation of AccountRepository for testing
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func testUser(id uuid.UUID) *domain.User {
	return &domain.User{
		ID:           id,
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	accountRepo := new(MockAccountRepository)
	service := NewService(userRepo, accountRepo)

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(testUser(userID), nil)
	accountRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
		return a.UserID == userID &&
			a.Description == "retirement savings" &&
			a.BillingAddress.Street == "Baker Street" &&
			a.BillingAddress.Number == 221
	})).Return(nil)

	account, err := service.Create(ctx, CreateAccountInput{
		UserID:      userID,
		Description: "retirement savings",
		Street:      "Baker Street",
		Number:      221,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID)
	accountRepo.AssertExpectations(t)
}

func TestCreate_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	accountRepo := new(MockAccountRepository)
	service := NewService(userRepo, accountRepo)

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	account, err := service.Create(ctx, CreateAccountInput{
		UserID:      userID,
		Description: "retirement savings",
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, account)
	accountRepo.AssertNotCalled(t, "Create")
}

func TestCreate_EmptyDescription(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	accountRepo := new(MockAccountRepository)
	service := NewService(userRepo, accountRepo)

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(testUser(userID), nil)

	_, err := service.Create(ctx, CreateAccountInput{UserID: userID})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	accountRepo.AssertNotCalled(t, "Create")
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	accountRepo := new(MockAccountRepository)
	service := NewService(userRepo, accountRepo)

	userID := uuid.New()
	accounts := []*domain.Account{
		{ID: uuid.New(), UserID: userID, Description: "main"},
		{ID: uuid.New(), UserID: userID, Description: "savings"},
	}
	userRepo.On("GetByID", mock.Anything, userID).Return(testUser(userID), nil)
	accountRepo.On("ListByUser", mock.Anything, userID).Return(accounts, nil)

	got, err := service.ListByUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestListByUser_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	accountRepo := new(MockAccountRepository)
	service := NewService(userRepo, accountRepo)

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	_, err := service.ListByUser(ctx, userID)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	accountRepo.AssertNotCalled(t, "ListByUser")
}
