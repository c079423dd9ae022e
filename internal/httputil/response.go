// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/cardledger/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// statusClientClosedRequest is the nginx convention for a client that went away.
const statusClientClosedRequest = 499

// errorClass maps a base error to its HTTP rendering. An empty message echoes err.Error().
type errorClass struct {
	target  error
	status  int
	code    string
	message string
}

// errorClasses is checked in order. TransferIncomplete and InsufficientFunds come first
// because transfer errors may also carry a generic cause in their chain.
var errorClasses = []errorClass{
	{
		apperrors.ErrTransferIncomplete, http.StatusInternalServerError,
		"transfer_incomplete", "The transfer could not be completed and was rolled back",
	},
	{
		apperrors.ErrRequestCancelled, statusClientClosedRequest,
		"request_cancelled", "The request was cancelled before any change was made",
	},
	{
		apperrors.ErrInsufficientFunds, http.StatusUnprocessableEntity,
		"insufficient_funds", "The source card balance is lower than the requested amount",
	},
	{apperrors.ErrInvalidState, http.StatusConflict, "invalid_state", ""},
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "A conflict occurred with existing data"},
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", ""},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Authentication is required"},
	{
		apperrors.ErrForbidden, http.StatusForbidden,
		"forbidden", "You don't have permission to access this resource",
	},
}

// classifyError returns the status code and body for err. Unclassified errors become
// 500 without exposing their details.
func classifyError(err error) (int, ErrorResponse) {
	for _, class := range errorClasses {
		if !apperrors.Is(err, class.target) {
			continue
		}
		message := class.message
		if message == "" {
			message = err.Error()
		}
		return class.status, ErrorResponse{Error: class.code, Message: message}
	}
	return http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	}
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON response.
// Server errors are logged at ERROR, client errors at WARN, both with the full chain.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, errorResponse := classifyError(err)

	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c, level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters using Gin.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	}

	c.JSON(http.StatusBadRequest, errorResponse)
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for validation errors using Gin.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	}

	c.JSON(http.StatusUnprocessableEntity, errorResponse)
}
