// Package mocks provides testify mocks for the crypto service package.
package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNumberCipher is a mock of service.NumberCipher.
type MockNumberCipher struct {
	mock.Mock
}

// NewMockNumberCipher creates a MockNumberCipher whose expectations are asserted on cleanup.
func NewMockNumberCipher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNumberCipher {
	m := &MockNumberCipher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Encrypt provides a mock function.
func (m *MockNumberCipher) Encrypt(cardID uuid.UUID, number string) (string, error) {
	args := m.Called(cardID, number)
	return args.String(0), args.Error(1)
}

// Decrypt provides a mock function.
func (m *MockNumberCipher) Decrypt(cardID uuid.UUID, encrypted string) (string, error) {
	args := m.Called(cardID, encrypted)
	return args.String(0), args.Error(1)
}
