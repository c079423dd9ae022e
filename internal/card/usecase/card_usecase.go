// Package usecase implements the card ledger: card issuance, balance reads, paged
// listings, status transitions and transfers between cards of the same owner.
//
// Every read-modify-write runs inside a transaction and reads the affected rows with
// a row lock, so concurrent requests touching the same card are serialized by the
// database.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	cardDomain "github.com/allisson/cardledger/internal/card/domain"
	cardService "github.com/allisson/cardledger/internal/card/service"
	cryptoService "github.com/allisson/cardledger/internal/crypto/service"
	"github.com/allisson/cardledger/internal/database"
	apperrors "github.com/allisson/cardledger/internal/errors"
	customValidation "github.com/allisson/cardledger/internal/validation"
)

// Config holds the tunables of the card ledger.
type Config struct {
	// TransferCommitTimeout bounds a transfer transaction after it stops following
	// the caller's cancellation.
	TransferCommitTimeout time.Duration
	// PaginationMaxSize is the largest accepted page size.
	PaginationMaxSize int
}

type cardUseCase struct {
	txManager     database.TxManager
	cardRepo      CardRepository
	identity      IdentityResolver
	numberCipher  cryptoService.NumberCipher
	generator     cardService.NumberGenerator
	clock         cardService.Clock
	logger        *slog.Logger
	commitTimeout time.Duration
	maxPageSize   int
}

// NewCardUseCase creates a new CardUseCase.
func NewCardUseCase(
	txManager database.TxManager,
	cardRepo CardRepository,
	identity IdentityResolver,
	numberCipher cryptoService.NumberCipher,
	generator cardService.NumberGenerator,
	clock cardService.Clock,
	logger *slog.Logger,
	cfg Config,
) CardUseCase {
	commitTimeout := cfg.TransferCommitTimeout
	if commitTimeout <= 0 {
		commitTimeout = 10 * time.Second
	}
	maxPageSize := cfg.PaginationMaxSize
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &cardUseCase{
		txManager:     txManager,
		cardRepo:      cardRepo,
		identity:      identity,
		numberCipher:  numberCipher,
		generator:     generator,
		clock:         clock,
		logger:        logger,
		commitTimeout: commitTimeout,
		maxPageSize:   maxPageSize,
	}
}

// CreateCard issues a new ACTIVE card with a zero balance to the user owning ownerEmail.
// The returned card carries the masked number; the plaintext never leaves this call.
func (c *cardUseCase) CreateCard(ctx context.Context, ownerEmail string) (*cardDomain.CreatedCard, error) {
	if err := validation.Validate(ownerEmail, validation.Required, customValidation.NotBlank); err != nil {
		return nil, cardDomain.ErrOwnerEmailRequired
	}

	ownerID, err := c.identity.ResolveIDByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	cardID := uuid.Must(uuid.NewV7())
	number := c.generator.Generate()

	encrypted, err := c.numberCipher.Encrypt(cardID, number)
	if err != nil {
		return nil, err
	}
	masked, err := cardDomain.MaskNumber(number)
	if err != nil {
		return nil, err
	}

	card := cardDomain.NewCard(cardID, ownerID, encrypted, cardService.ExpiryDate(now), now)
	if err := c.cardRepo.Save(ctx, card); err != nil {
		return nil, err
	}

	return &cardDomain.CreatedCard{
		ID:           card.ID,
		MaskedNumber: masked,
		OwnerID:      card.OwnerID,
		ExpiryDate:   card.ExpiryDate,
		Status:       card.Status,
		Balance:      card.Balance,
		CreatedAt:    card.CreatedAt,
	}, nil
}

// Transfer moves input.Amount between two ACTIVE cards owned by input.CallerID.
//
// The transaction runs on a context detached from the caller's cancellation and bounded
// by the commit timeout. The caller's context is consulted one last time before balances
// are modified; after that point the transfer either commits or fails as a whole with
// ErrTransferIncomplete.
func (c *cardUseCase) Transfer(ctx context.Context, input *cardDomain.TransferInput) error {
	if err := validateAmount(input.Amount); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return apperrors.Cancelled(err)
	}

	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.commitTimeout)
	defer cancel()

	applied := false
	err := c.txManager.WithTx(txCtx, func(txCtx context.Context) error {
		from, to, err := c.lockPair(txCtx, input.FromCardID, input.ToCardID)
		if err != nil {
			return err
		}

		if cardDomain.Authorize(input.CallerID, from, cardDomain.ActionTransferFrom) != nil ||
			cardDomain.Authorize(input.CallerID, to, cardDomain.ActionTransferTo) != nil {
			return cardDomain.ErrTransferNotOwned
		}
		if from.Status != cardDomain.StatusActive || to.Status != cardDomain.StatusActive {
			return cardDomain.ErrCardNotActive
		}
		if from.Balance.LessThan(input.Amount) {
			return cardDomain.ErrInsufficientFunds
		}

		if from.ID == to.ID {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return apperrors.Cancelled(err)
		}

		applied = true
		now := c.clock.Now()
		if err := from.Debit(input.Amount); err != nil {
			return err
		}
		to.Credit(input.Amount)
		from.UpdatedAt = now
		to.UpdatedAt = now

		if err := c.cardRepo.Save(txCtx, from); err != nil {
			return err
		}
		return c.cardRepo.Save(txCtx, to)
	})
	if err == nil {
		return nil
	}
	if !applied {
		return err
	}

	c.logger.Error("transfer incomplete",
		slog.Bool("alert", true),
		slog.String("from_card_id", input.FromCardID.String()),
		slog.String("to_card_id", input.ToCardID.String()),
		slog.Any("error", err),
	)
	return fmt.Errorf("%w: %w", cardDomain.ErrTransferIncomplete, err)
}

// lockPair locks both cards in ascending id order so opposite transfers cannot deadlock.
// It returns them as (from, to).
func (c *cardUseCase) lockPair(
	ctx context.Context,
	fromID, toID uuid.UUID,
) (*cardDomain.Card, *cardDomain.Card, error) {
	if fromID == toID {
		card, err := c.cardRepo.GetForUpdate(ctx, fromID)
		if err != nil {
			return nil, nil, err
		}
		return card, card, nil
	}

	firstID, secondID := fromID, toID
	if secondID.String() < firstID.String() {
		firstID, secondID = secondID, firstID
	}

	first, err := c.cardRepo.GetForUpdate(ctx, firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := c.cardRepo.GetForUpdate(ctx, secondID)
	if err != nil {
		return nil, nil, err
	}

	if first.ID == fromID {
		return first, second, nil
	}
	return second, first, nil
}

// GetBalance returns the balance of a card owned by callerID.
func (c *cardUseCase) GetBalance(ctx context.Context, cardID, callerID uuid.UUID) (decimal.Decimal, error) {
	card, err := c.cardRepo.Get(ctx, cardID)
	if err != nil {
		return decimal.Zero, err
	}
	if err := cardDomain.Authorize(callerID, card, cardDomain.ActionViewBalance); err != nil {
		return decimal.Zero, err
	}
	return card.Balance, nil
}

// ListOwnedCards returns a page of the caller's cards, optionally filtered by status.
func (c *cardUseCase) ListOwnedCards(
	ctx context.Context,
	callerEmail string,
	status *cardDomain.Status,
	page, size int,
) ([]*cardDomain.UserCardView, error) {
	offset, limit, err := c.pageBounds(page, size)
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, cardDomain.ErrInvalidStatus
	}

	ownerID, err := c.identity.ResolveIDByEmail(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	var cards []*cardDomain.Card
	if status == nil {
		cards, err = c.cardRepo.ListByOwner(ctx, ownerID, offset, limit)
	} else {
		cards, err = c.cardRepo.ListByOwnerAndStatus(ctx, ownerID, *status, offset, limit)
	}
	if err != nil {
		return nil, err
	}

	views := make([]*cardDomain.UserCardView, 0, len(cards))
	for _, card := range cards {
		masked, err := c.mask(card)
		if err != nil {
			return nil, err
		}
		views = append(views, &cardDomain.UserCardView{
			ID:           card.ID,
			MaskedNumber: masked,
			ExpiryDate:   card.ExpiryDate,
			Status:       card.Status,
			Balance:      card.Balance,
		})
	}
	return views, nil
}

// ListAllCards returns a page of every card. Views expose the owner instead of the balance.
func (c *cardUseCase) ListAllCards(ctx context.Context, page, size int) ([]*cardDomain.AdminCardView, error) {
	offset, limit, err := c.pageBounds(page, size)
	if err != nil {
		return nil, err
	}

	cards, err := c.cardRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	views := make([]*cardDomain.AdminCardView, 0, len(cards))
	for _, card := range cards {
		masked, err := c.mask(card)
		if err != nil {
			return nil, err
		}
		views = append(views, &cardDomain.AdminCardView{
			ID:           card.ID,
			MaskedNumber: masked,
			ExpiryDate:   card.ExpiryDate,
			Status:       card.Status,
			OwnerID:      card.OwnerID,
		})
	}
	return views, nil
}

// BlockByUser blocks a card on request of its owner.
func (c *cardUseCase) BlockByUser(ctx context.Context, cardID, callerID uuid.UUID) error {
	return c.transition(ctx, cardID, callerID, cardDomain.ActionBlockByUser)
}

// BlockByAdmin blocks a card that is not already blocked.
func (c *cardUseCase) BlockByAdmin(ctx context.Context, cardID uuid.UUID) error {
	return c.transition(ctx, cardID, uuid.Nil, cardDomain.ActionBlockByAdmin)
}

// Activate activates a card that is not already active.
func (c *cardUseCase) Activate(ctx context.Context, cardID uuid.UUID) error {
	return c.transition(ctx, cardID, uuid.Nil, cardDomain.ActionActivate)
}

// DeleteCard permanently removes a card.
func (c *cardUseCase) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	return c.cardRepo.Delete(ctx, cardID)
}

func (c *cardUseCase) transition(
	ctx context.Context,
	cardID, callerID uuid.UUID,
	action cardDomain.Action,
) error {
	return c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		card, err := c.cardRepo.GetForUpdate(txCtx, cardID)
		if err != nil {
			return err
		}
		if err := cardDomain.Authorize(callerID, card, action); err != nil {
			return err
		}
		if err := card.Transition(action); err != nil {
			return err
		}
		card.UpdatedAt = c.clock.Now()
		return c.cardRepo.Save(txCtx, card)
	})
}

func (c *cardUseCase) mask(card *cardDomain.Card) (string, error) {
	plain, err := c.numberCipher.Decrypt(card.ID, card.Number)
	if err != nil {
		return "", err
	}
	return cardDomain.MaskNumber(plain)
}

// pageBounds validates page and size and converts them to offset and limit.
// page*size must fit in an int.
func (c *cardUseCase) pageBounds(page, size int) (int, int, error) {
	err := validation.Errors{
		"size": validation.Validate(size, validation.Required, validation.Min(1), validation.Max(c.maxPageSize)),
	}.Filter()
	if err == nil {
		err = validation.Errors{
			"page": validation.Validate(page, validation.Min(0), validation.Max(math.MaxInt/size)),
		}.Filter()
	}
	if err != nil {
		return 0, 0, apperrors.Wrap(cardDomain.ErrInvalidPagination, err.Error())
	}
	return page * size, size, nil
}

func validateAmount(amount decimal.Decimal) error {
	err := validation.Validate(
		amount,
		customValidation.PositiveAmount,
		customValidation.MaxDecimalPlaces(cardDomain.BalanceScale),
	)
	if err != nil {
		return apperrors.Wrap(cardDomain.ErrInvalidAmount, err.Error())
	}
	return nil
}
