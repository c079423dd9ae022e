// Package http provides the card HTTP handlers for owners and administrators.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cardDomain "github.com/allisson/cardledger/internal/card/domain"
	"github.com/allisson/cardledger/internal/card/http/dto"
	cardUseCase "github.com/allisson/cardledger/internal/card/usecase"
	apperrors "github.com/allisson/cardledger/internal/errors"
	"github.com/allisson/cardledger/internal/httputil"
	userDomain "github.com/allisson/cardledger/internal/user/domain"
	userHttp "github.com/allisson/cardledger/internal/user/http"
	customValidation "github.com/allisson/cardledger/internal/validation"
)

// CardHandler handles card requests. Owner endpoints read the caller from the
// authenticated principal; admin endpoints expect RequireRole in front of them.
type CardHandler struct {
	cardUseCase cardUseCase.CardUseCase
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(useCase cardUseCase.CardUseCase, logger *slog.Logger) *CardHandler {
	return &CardHandler{cardUseCase: useCase, logger: logger}
}

func (h *CardHandler) principal(c *gin.Context) (*userDomain.Principal, bool) {
	principal, ok := userHttp.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return principal, true
}

func (h *CardHandler) cardID(c *gin.Context) (uuid.UUID, bool) {
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid card ID format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return cardID, true
}

// ListOwnHandler lists the caller's cards, optionally filtered by status.
// GET /v1/cards?status=&page=&size= - USER. Returns 200 OK.
func (h *CardHandler) ListOwnHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	page, size, err := httputil.ParsePageSize(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var status *cardDomain.Status
	if raw, present := c.GetQuery("status"); present {
		parsed, err := cardDomain.ParseStatus(raw)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		status = &parsed
	}

	views, err := h.cardUseCase.ListOwnedCards(c.Request.Context(), principal.Email, status, page, size)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserCardsToListResponse(views))
}

// BalanceHandler returns the balance of one of the caller's cards.
// GET /v1/cards/:id/balance - USER. Returns 200 OK.
func (h *CardHandler) BalanceHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	cardID, ok := h.cardID(c)
	if !ok {
		return
	}

	balance, err := h.cardUseCase.GetBalance(c.Request.Context(), cardID, principal.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBalanceToResponse(cardID, balance))
}

// TransferHandler moves funds between two of the caller's cards.
// POST /v1/cards/transfer - USER. Returns 204 No Content.
func (h *CardHandler) TransferHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.cardUseCase.Transfer(c.Request.Context(), req.ToTransferInput(principal.UserID)); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// BlockOwnHandler blocks one of the caller's cards.
// POST /v1/cards/:id/block - USER. Returns 204 No Content.
func (h *CardHandler) BlockOwnHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	cardID, ok := h.cardID(c)
	if !ok {
		return
	}

	if err := h.cardUseCase.BlockByUser(c.Request.Context(), cardID, principal.UserID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateHandler issues a card for the user with the given email.
// POST /v1/admin/cards - ADMIN. Returns 201 Created.
func (h *CardHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	card, err := h.cardUseCase.CreateCard(c.Request.Context(), req.OwnerEmail)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCreatedCardToResponse(card))
}

// ListAllHandler lists every card.
// GET /v1/admin/cards?page=&size= - ADMIN. Returns 200 OK.
func (h *CardHandler) ListAllHandler(c *gin.Context) {
	page, size, err := httputil.ParsePageSize(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	views, err := h.cardUseCase.ListAllCards(c.Request.Context(), page, size)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAdminCardsToListResponse(views))
}

// BlockHandler blocks any card.
// POST /v1/admin/cards/:id/block - ADMIN. Returns 204 No Content.
func (h *CardHandler) BlockHandler(c *gin.Context) {
	h.adminAction(c, h.cardUseCase.BlockByAdmin)
}

// ActivateHandler activates any non-active card.
// POST /v1/admin/cards/:id/activate - ADMIN. Returns 204 No Content.
func (h *CardHandler) ActivateHandler(c *gin.Context) {
	h.adminAction(c, h.cardUseCase.Activate)
}

// DeleteHandler deletes any card.
// DELETE /v1/admin/cards/:id - ADMIN. Returns 204 No Content.
func (h *CardHandler) DeleteHandler(c *gin.Context) {
	h.adminAction(c, h.cardUseCase.DeleteCard)
}

func (h *CardHandler) adminAction(c *gin.Context, action func(ctx context.Context, cardID uuid.UUID) error) {
	cardID, ok := h.cardID(c)
	if !ok {
		return
	}

	if err := action(c.Request.Context(), cardID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
