package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jpereira/stockfolio-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

func TestCreate_HashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := NewService(repo)

	repo.On("GetByUsername", mock.Anything, "jdoe").Return(nil, domain.ErrUserNotFound)

	var created *domain.User
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		created = u
		return u.Username == "jdoe" && u.Email == "jdoe@example.com"
	})).Return(nil)

	user, err := service.Create(ctx, CreateUserInput{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "s3cret", user.PasswordHash, "plaintext password must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestCreate_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := NewService(repo)

	repo.On("GetByUsername", mock.Anything, "jdoe").
		Return(&domain.User{ID: uuid.New(), Username: "jdoe"}, nil)

	_, err := service.Create(ctx, CreateUserInput{
		Username: "jdoe",
		Email:    "other@example.com",
		Password: "s3cret",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	repo.AssertNotCalled(t, "Create")
}

func TestCreate_MissingFields(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := NewService(repo)

	_, err := service.Create(ctx, CreateUserInput{Username: "jdoe", Email: "jdoe@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Create(ctx, CreateUserInput{Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create")
}

func TestGetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := NewService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrUserNotFound)

	_, err := service.GetByID(ctx, id)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
