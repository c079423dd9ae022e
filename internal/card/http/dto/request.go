// Package dto provides data transfer objects for the card HTTP layer.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	cardDomain "github.com/allisson/cardledger/internal/card/domain"
	customValidation "github.com/allisson/cardledger/internal/validation"
)

var uuidRule = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := uuid.Parse(s)
		return err == nil
	},
	validation.NewError("validation_uuid", "must be a valid UUID"),
)

// CreateCardRequest is the body of an admin card creation request.
type CreateCardRequest struct {
	OwnerEmail string `json:"owner_email"`
}

// Validate checks the request.
func (r *CreateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OwnerEmail,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
		),
	)
}

// TransferRequest is the body of a transfer between two cards of the caller.
// Amount accepts both JSON strings and numbers.
type TransferRequest struct {
	FromCardID string          `json:"from_card_id"`
	ToCardID   string          `json:"to_card_id"`
	Amount     decimal.Decimal `json:"amount"`
}

// Validate checks the request.
func (r *TransferRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FromCardID, validation.Required, uuidRule),
		validation.Field(&r.ToCardID, validation.Required, uuidRule),
		validation.Field(&r.Amount,
			customValidation.PositiveAmount,
			customValidation.MaxDecimalPlaces(cardDomain.BalanceScale),
		),
	)
}

// ToTransferInput converts a validated request into the domain input for callerID.
func (r *TransferRequest) ToTransferInput(callerID uuid.UUID) *cardDomain.TransferInput {
	return &cardDomain.TransferInput{
		CallerID:   callerID,
		FromCardID: uuid.MustParse(r.FromCardID),
		ToCardID:   uuid.MustParse(r.ToCardID),
		Amount:     r.Amount,
	}
}
