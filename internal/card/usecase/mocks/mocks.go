// Package mocks provides testify mocks for the card use case package.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	cardDomain "github.com/allisson/cardledger/internal/card/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockCardRepository is a mock of usecase.CardRepository.
type MockCardRepository struct {
	mock.Mock
}

// NewMockCardRepository creates a MockCardRepository whose expectations are asserted on cleanup.
func NewMockCardRepository(t testingT) *MockCardRepository {
	m := &MockCardRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func cards(args mock.Arguments) []*cardDomain.Card {
	if v := args.Get(0); v != nil {
		return v.([]*cardDomain.Card)
	}
	return nil
}

func card(args mock.Arguments) *cardDomain.Card {
	if v := args.Get(0); v != nil {
		return v.(*cardDomain.Card)
	}
	return nil
}

// Save provides a mock function.
func (m *MockCardRepository) Save(ctx context.Context, c *cardDomain.Card) error {
	return m.Called(ctx, c).Error(0)
}

// Get provides a mock function.
func (m *MockCardRepository) Get(ctx context.Context, cardID uuid.UUID) (*cardDomain.Card, error) {
	args := m.Called(ctx, cardID)
	return card(args), args.Error(1)
}

// GetForUpdate provides a mock function.
func (m *MockCardRepository) GetForUpdate(ctx context.Context, cardID uuid.UUID) (*cardDomain.Card, error) {
	args := m.Called(ctx, cardID)
	return card(args), args.Error(1)
}

// ListByOwner provides a mock function.
func (m *MockCardRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*cardDomain.Card, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	return cards(args), args.Error(1)
}

// ListByOwnerAndStatus provides a mock function.
func (m *MockCardRepository) ListByOwnerAndStatus(
	ctx context.Context,
	ownerID uuid.UUID,
	status cardDomain.Status,
	offset, limit int,
) ([]*cardDomain.Card, error) {
	args := m.Called(ctx, ownerID, status, offset, limit)
	return cards(args), args.Error(1)
}

// List provides a mock function.
func (m *MockCardRepository) List(ctx context.Context, offset, limit int) ([]*cardDomain.Card, error) {
	args := m.Called(ctx, offset, limit)
	return cards(args), args.Error(1)
}

// Delete provides a mock function.
func (m *MockCardRepository) Delete(ctx context.Context, cardID uuid.UUID) error {
	return m.Called(ctx, cardID).Error(0)
}

// MockIdentityResolver is a mock of usecase.IdentityResolver.
type MockIdentityResolver struct {
	mock.Mock
}

// NewMockIdentityResolver creates a MockIdentityResolver whose expectations are asserted on cleanup.
func NewMockIdentityResolver(t testingT) *MockIdentityResolver {
	m := &MockIdentityResolver{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ResolveIDByEmail provides a mock function.
func (m *MockIdentityResolver) ResolveIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockCardUseCase is a mock of usecase.CardUseCase.
type MockCardUseCase struct {
	mock.Mock
}

// NewMockCardUseCase creates a MockCardUseCase whose expectations are asserted on cleanup.
func NewMockCardUseCase(t testingT) *MockCardUseCase {
	m := &MockCardUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CreateCard provides a mock function.
func (m *MockCardUseCase) CreateCard(ctx context.Context, ownerEmail string) (*cardDomain.CreatedCard, error) {
	args := m.Called(ctx, ownerEmail)
	if v := args.Get(0); v != nil {
		return v.(*cardDomain.CreatedCard), args.Error(1)
	}
	return nil, args.Error(1)
}

// Transfer provides a mock function.
func (m *MockCardUseCase) Transfer(ctx context.Context, input *cardDomain.TransferInput) error {
	return m.Called(ctx, input).Error(0)
}

// GetBalance provides a mock function.
func (m *MockCardUseCase) GetBalance(ctx context.Context, cardID, callerID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, cardID, callerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// ListOwnedCards provides a mock function.
func (m *MockCardUseCase) ListOwnedCards(
	ctx context.Context,
	callerEmail string,
	status *cardDomain.Status,
	page, size int,
) ([]*cardDomain.UserCardView, error) {
	args := m.Called(ctx, callerEmail, status, page, size)
	if v := args.Get(0); v != nil {
		return v.([]*cardDomain.UserCardView), args.Error(1)
	}
	return nil, args.Error(1)
}

// ListAllCards provides a mock function.
func (m *MockCardUseCase) ListAllCards(ctx context.Context, page, size int) ([]*cardDomain.AdminCardView, error) {
	args := m.Called(ctx, page, size)
	if v := args.Get(0); v != nil {
		return v.([]*cardDomain.AdminCardView), args.Error(1)
	}
	return nil, args.Error(1)
}

// BlockByUser provides a mock function.
func (m *MockCardUseCase) BlockByUser(ctx context.Context, cardID, callerID uuid.UUID) error {
	return m.Called(ctx, cardID, callerID).Error(0)
}

// BlockByAdmin provides a mock function.
func (m *MockCardUseCase) BlockByAdmin(ctx context.Context, cardID uuid.UUID) error {
	return m.Called(ctx, cardID).Error(0)
}

// Activate provides a mock function.
func (m *MockCardUseCase) Activate(ctx context.Context, cardID uuid.UUID) error {
	return m.Called(ctx, cardID).Error(0)
}

// DeleteCard provides a mock function.
func (m *MockCardUseCase) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	return m.Called(ctx, cardID).Error(0)
}
