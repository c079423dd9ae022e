// Package mocks provides testify mocks for the user service package.
package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	userDomain "github.com/allisson/cardledger/internal/user/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordService is a mock of service.PasswordService.
type MockPasswordService struct {
	mock.Mock
}

// NewMockPasswordService creates a MockPasswordService whose expectations are asserted on cleanup.
func NewMockPasswordService(t testingT) *MockPasswordService {
	m := &MockPasswordService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Hash provides a mock function.
func (m *MockPasswordService) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Compare provides a mock function.
func (m *MockPasswordService) Compare(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a MockTokenService whose expectations are asserted on cleanup.
func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Issue provides a mock function.
func (m *MockTokenService) Issue(user *userDomain.User, now time.Time) (*userDomain.AccessToken, error) {
	args := m.Called(user, now)
	var token *userDomain.AccessToken
	if v := args.Get(0); v != nil {
		token = v.(*userDomain.AccessToken)
	}
	return token, args.Error(1)
}

// Parse provides a mock function.
func (m *MockTokenService) Parse(token string, now time.Time) (*userDomain.Principal, error) {
	args := m.Called(token, now)
	var principal *userDomain.Principal
	if v := args.Get(0); v != nil {
		principal = v.(*userDomain.Principal)
	}
	return principal, args.Error(1)
}
