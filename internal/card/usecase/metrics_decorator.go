package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cardDomain "github.com/allisson/cardledger/internal/card/domain"
	"github.com/allisson/cardledger/internal/metrics"
)

const metricsDomain = "card"

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *cardUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// CreateCard records metrics for card creation.
func (c *cardUseCaseWithMetrics) CreateCard(ctx context.Context, ownerEmail string) (*cardDomain.CreatedCard, error) {
	start := time.Now()
	card, err := c.next.CreateCard(ctx, ownerEmail)
	c.record(ctx, "card_create", start, err)
	return card, err
}

// Transfer records metrics for transfers.
func (c *cardUseCaseWithMetrics) Transfer(ctx context.Context, input *cardDomain.TransferInput) error {
	start := time.Now()
	err := c.next.Transfer(ctx, input)
	c.record(ctx, "card_transfer", start, err)
	return err
}

// GetBalance records metrics for balance reads.
func (c *cardUseCaseWithMetrics) GetBalance(
	ctx context.Context,
	cardID, callerID uuid.UUID,
) (decimal.Decimal, error) {
	start := time.Now()
	balance, err := c.next.GetBalance(ctx, cardID, callerID)
	c.record(ctx, "card_get_balance", start, err)
	return balance, err
}

// ListOwnedCards records metrics for owner listings.
func (c *cardUseCaseWithMetrics) ListOwnedCards(
	ctx context.Context,
	callerEmail string,
	status *cardDomain.Status,
	page, size int,
) ([]*cardDomain.UserCardView, error) {
	start := time.Now()
	views, err := c.next.ListOwnedCards(ctx, callerEmail, status, page, size)
	c.record(ctx, "card_list_owned", start, err)
	return views, err
}

// ListAllCards records metrics for admin listings.
func (c *cardUseCaseWithMetrics) ListAllCards(
	ctx context.Context,
	page, size int,
) ([]*cardDomain.AdminCardView, error) {
	start := time.Now()
	views, err := c.next.ListAllCards(ctx, page, size)
	c.record(ctx, "card_list_all", start, err)
	return views, err
}

// BlockByUser records metrics for owner block requests.
func (c *cardUseCaseWithMetrics) BlockByUser(ctx context.Context, cardID, callerID uuid.UUID) error {
	start := time.Now()
	err := c.next.BlockByUser(ctx, cardID, callerID)
	c.record(ctx, "card_block_by_user", start, err)
	return err
}

// BlockByAdmin records metrics for admin blocks.
func (c *cardUseCaseWithMetrics) BlockByAdmin(ctx context.Context, cardID uuid.UUID) error {
	start := time.Now()
	err := c.next.BlockByAdmin(ctx, cardID)
	c.record(ctx, "card_block_by_admin", start, err)
	return err
}

// Activate records metrics for activations.
func (c *cardUseCaseWithMetrics) Activate(ctx context.Context, cardID uuid.UUID) error {
	start := time.Now()
	err := c.next.Activate(ctx, cardID)
	c.record(ctx, "card_activate", start, err)
	return err
}

// DeleteCard records metrics for deletions.
func (c *cardUseCaseWithMetrics) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	start := time.Now()
	err := c.next.DeleteCard(ctx, cardID)
	c.record(ctx, "card_delete", start, err)
	return err
}
