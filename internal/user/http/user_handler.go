package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/cardledger/internal/httputil"
	"github.com/allisson/cardledger/internal/user/http/dto"
	userUseCase "github.com/allisson/cardledger/internal/user/usecase"
	customValidation "github.com/allisson/cardledger/internal/validation"
)

// UserHandler handles registration, login and user administration requests.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(useCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: useCase, logger: logger}
}

func (h *UserHandler) bindCredentials(c *gin.Context) (*dto.CredentialsRequest, bool) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}
	return &req, true
}

// RegisterHandler creates a USER account.
// POST /v1/users/register - public. Returns 201 Created.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	req, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// LoginHandler issues an access token.
// POST /v1/users/login - public. Returns 200 OK.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	req, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	token, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponse(token))
}

// ListHandler lists users.
// GET /v1/admin/users?page=&size= - ADMIN. Returns 200 OK.
func (h *UserHandler) ListHandler(c *gin.Context) {
	page, size, err := httputil.ParsePageSize(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.ListUsers(c.Request.Context(), page, size)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// DeleteHandler removes a user that owns no cards.
// DELETE /v1/admin/users/:id - ADMIN. Returns 204 No Content.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid user ID format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.userUseCase.DeleteUser(c.Request.Context(), userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
