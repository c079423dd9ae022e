package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/cardledger/internal/errors"
	"github.com/allisson/cardledger/internal/httputil"
	userDomain "github.com/allisson/cardledger/internal/user/domain"
	userUseCase "github.com/allisson/cardledger/internal/user/usecase"
)

const bearerPrefix = "bearer "

// AuthenticationMiddleware authenticates "Authorization: Bearer <token>" requests and
// stores the caller in the request context (see GetPrincipal).
//
//   - Missing or malformed header → 401 Unauthorized
//   - Invalid, expired or orphaned token → 401 Unauthorized
func AuthenticationMiddleware(useCase userUseCase.UserUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) <= len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		principal, err := useCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// RequireRole rejects callers whose role differs from role with 403 Forbidden.
// It MUST run after AuthenticationMiddleware.
func RequireRole(role userDomain.Role, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}
		if principal.Role != role {
			logger.Debug("authorization failed: role mismatch",
				slog.String("user_id", principal.UserID.String()),
				slog.String("required_role", string(role)))
			err := apperrors.ErrForbidden
			if role == userDomain.RoleAdmin {
				err = userDomain.ErrAdminRequired
			}
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}
		c.Next()
	}
}
