// Package mocks provides testify mocks for the user use case package.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	userDomain "github.com/allisson/cardledger/internal/user/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func user(args mock.Arguments) *userDomain.User {
	if v := args.Get(0); v != nil {
		return v.(*userDomain.User)
	}
	return nil
}

// MockUserRepository is a mock of usecase.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a MockUserRepository whose expectations are asserted on cleanup.
func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create provides a mock function.
func (m *MockUserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return m.Called(ctx, u).Error(0)
}

// Get provides a mock function.
func (m *MockUserRepository) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, userID)
	return user(args), args.Error(1)
}

// GetByEmail provides a mock function.
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	return user(args), args.Error(1)
}

// UpdateRole provides a mock function.
func (m *MockUserRepository) UpdateRole(
	ctx context.Context,
	userID uuid.UUID,
	role userDomain.Role,
	updatedAt time.Time,
) error {
	return m.Called(ctx, userID, role, updatedAt).Error(0)
}

// List provides a mock function.
func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	args := m.Called(ctx, offset, limit)
	var users []*userDomain.User
	if v := args.Get(0); v != nil {
		users = v.([]*userDomain.User)
	}
	return users, args.Error(1)
}

// Delete provides a mock function.
func (m *MockUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockUserUseCase is a mock of usecase.UserUseCase.
type MockUserUseCase struct {
	mock.Mock
}

// NewMockUserUseCase creates a MockUserUseCase whose expectations are asserted on cleanup.
func NewMockUserUseCase(t testingT) *MockUserUseCase {
	m := &MockUserUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Register provides a mock function.
func (m *MockUserUseCase) Register(ctx context.Context, email, password string) (*userDomain.User, error) {
	args := m.Called(ctx, email, password)
	return user(args), args.Error(1)
}

// CreateUser provides a mock function.
func (m *MockUserUseCase) CreateUser(
	ctx context.Context,
	email, password string,
	role userDomain.Role,
) (*userDomain.User, error) {
	args := m.Called(ctx, email, password, role)
	return user(args), args.Error(1)
}

// Login provides a mock function.
func (m *MockUserUseCase) Login(ctx context.Context, email, password string) (*userDomain.AccessToken, error) {
	args := m.Called(ctx, email, password)
	var token *userDomain.AccessToken
	if v := args.Get(0); v != nil {
		token = v.(*userDomain.AccessToken)
	}
	return token, args.Error(1)
}

// Authenticate provides a mock function.
func (m *MockUserUseCase) Authenticate(ctx context.Context, token string) (*userDomain.Principal, error) {
	args := m.Called(ctx, token)
	var principal *userDomain.Principal
	if v := args.Get(0); v != nil {
		principal = v.(*userDomain.Principal)
	}
	return principal, args.Error(1)
}

// ResolveIDByEmail provides a mock function.
func (m *MockUserUseCase) ResolveIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// GrantAdmin provides a mock function.
func (m *MockUserUseCase) GrantAdmin(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	return user(args), args.Error(1)
}

// ListUsers provides a mock function.
func (m *MockUserUseCase) ListUsers(ctx context.Context, page, size int) ([]*userDomain.User, error) {
	args := m.Called(ctx, page, size)
	var users []*userDomain.User
	if v := args.Get(0); v != nil {
		users = v.([]*userDomain.User)
	}
	return users, args.Error(1)
}

// DeleteUser provides a mock function.
func (m *MockUserUseCase) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}
