// Package domain defines the card ledger domain model.
//
// A Card holds funds for exactly one owner. Its status follows a small state machine
// (see Status.Apply) and its balance changes only through transfers between cards of
// the same owner.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NumberLength is the number of digits in a generated card number.
const NumberLength = 16

// BalanceScale is the number of fractional digits kept for balances and amounts.
const BalanceScale int32 = 2

// Card represents a funds-holding card.
type Card struct {
	ID         uuid.UUID       // Unique identifier (UUIDv7)
	Number     string          // Encrypted card number, opaque outside the number cipher
	OwnerID    uuid.UUID       // Owning user, never changes
	ExpiryDate string          // MM/YY, set at creation
	Status     Status          // Current lifecycle status
	Balance    decimal.Decimal // Never negative
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCard returns a freshly issued ACTIVE card with a zero balance.
func NewCard(id, ownerID uuid.UUID, encryptedNumber, expiryDate string, now time.Time) *Card {
	return &Card{
		ID:         id,
		Number:     encryptedNumber,
		OwnerID:    ownerID,
		ExpiryDate: expiryDate,
		Status:     StatusActive,
		Balance:    decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Transition applies action to the card status. On failure the card is left untouched.
func (c *Card) Transition(action Action) error {
	next, err := c.Status.Apply(action)
	if err != nil {
		return err
	}
	c.Status = next
	return nil
}

// Debit removes amount from the balance, refusing to go below zero.
func (c *Card) Debit(amount decimal.Decimal) error {
	if c.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}

// Credit adds amount to the balance.
func (c *Card) Credit(amount decimal.Decimal) {
	c.Balance = c.Balance.Add(amount)
}

// TransferInput contains the parameters of a transfer between two cards of one owner.
type TransferInput struct {
	CallerID   uuid.UUID
	FromCardID uuid.UUID
	ToCardID   uuid.UUID
	Amount     decimal.Decimal
}

// UserCardView is the representation of a card shown to its owner.
type UserCardView struct {
	ID           uuid.UUID
	MaskedNumber string
	ExpiryDate   string
	Status       Status
	Balance      decimal.Decimal
}

// AdminCardView is the representation of a card shown to administrators. It
// carries the owner instead of the balance.
type AdminCardView struct {
	ID           uuid.UUID
	MaskedNumber string
	ExpiryDate   string
	Status       Status
	OwnerID      uuid.UUID
}

// CreatedCard is the result of issuing a card.
type CreatedCard struct {
	ID           uuid.UUID
	MaskedNumber string
	OwnerID      uuid.UUID
	ExpiryDate   string
	Status       Status
	Balance      decimal.Decimal
	CreatedAt    time.Time
}
