package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cardDomain "github.com/allisson/cardledger/internal/card/domain"
)

// CardRepository defines the interface for card persistence.
type CardRepository interface {
	// Save inserts the card or, when its id exists, updates status and balance.
	Save(ctx context.Context, card *cardDomain.Card) error
	Get(ctx context.Context, cardID uuid.UUID) (*cardDomain.Card, error)
	// GetForUpdate reads the card and holds a row lock until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, cardID uuid.UUID) (*cardDomain.Card, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*cardDomain.Card, error)
	ListByOwnerAndStatus(
		ctx context.Context,
		ownerID uuid.UUID,
		status cardDomain.Status,
		offset, limit int,
	) ([]*cardDomain.Card, error)
	List(ctx context.Context, offset, limit int) ([]*cardDomain.Card, error)
	Delete(ctx context.Context, cardID uuid.UUID) error
}

// IdentityResolver resolves user emails to user ids.
type IdentityResolver interface {
	ResolveIDByEmail(ctx context.Context, email string) (uuid.UUID, error)
}

// CardUseCase defines the card ledger operations.
type CardUseCase interface {
	CreateCard(ctx context.Context, ownerEmail string) (*cardDomain.CreatedCard, error)
	Transfer(ctx context.Context, input *cardDomain.TransferInput) error
	GetBalance(ctx context.Context, cardID, callerID uuid.UUID) (decimal.Decimal, error)
	ListOwnedCards(
		ctx context.Context,
		callerEmail string,
		status *cardDomain.Status,
		page, size int,
	) ([]*cardDomain.UserCardView, error)
	ListAllCards(ctx context.Context, page, size int) ([]*cardDomain.AdminCardView, error)
	BlockByUser(ctx context.Context, cardID, callerID uuid.UUID) error
	BlockByAdmin(ctx context.Context, cardID uuid.UUID) error
	Activate(ctx context.Context, cardID uuid.UUID) error
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
}
