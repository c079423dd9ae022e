package domain

import (
	"github.com/allisson/cardledger/internal/errors"
)

// Card ledger errors.
var (
	// ErrCardNotFound indicates a card with the specified ID was not found.
	ErrCardNotFound = errors.Wrap(errors.ErrNotFound, "card not found")

	// ErrCardNotOwned indicates the caller does not own the card.
	ErrCardNotOwned = errors.Wrap(errors.ErrForbidden, "card does not belong to the caller")

	// ErrTransferNotOwned indicates at least one card of a transfer belongs to someone else.
	ErrTransferNotOwned = errors.Wrap(errors.ErrForbidden, "both cards must belong to the caller")

	// ErrCardAlreadyActive indicates activate was requested on an ACTIVE card.
	ErrCardAlreadyActive = errors.Wrap(errors.ErrInvalidState, "card is already active")

	// ErrCardAlreadyBlocked indicates an admin block was requested on a BLOCKED card.
	ErrCardAlreadyBlocked = errors.Wrap(errors.ErrInvalidState, "card is already blocked")

	// ErrCardNotActive indicates a transfer touched a card that is not ACTIVE.
	ErrCardNotActive = errors.Wrap(errors.ErrInvalidState, "both cards must be active")

	// ErrUnsupportedAction indicates a status transition that does not exist.
	ErrUnsupportedAction = errors.Wrap(errors.ErrInvalidState, "unsupported card action")

	// ErrInsufficientFunds indicates the source card balance is lower than the amount.
	ErrInsufficientFunds = errors.Wrap(errors.ErrInsufficientFunds, "insufficient funds on source card")

	// ErrInvalidAmount indicates a non-positive amount or one with too many decimal places.
	ErrInvalidAmount = errors.Wrap(errors.ErrInvalidInput, "invalid transfer amount")

	// ErrInvalidStatus indicates an unknown status filter.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "invalid card status")

	// ErrInvalidPagination indicates a negative page or a size out of bounds.
	ErrInvalidPagination = errors.Wrap(errors.ErrInvalidInput, "invalid pagination")

	// ErrOwnerEmailRequired indicates a blank owner email on card creation.
	ErrOwnerEmailRequired = errors.Wrap(errors.ErrInvalidInput, "owner email is required")

	// ErrInvalidCardNumber indicates a decrypted card number too short to mask.
	ErrInvalidCardNumber = errors.New("invalid card number")

	// ErrTransferIncomplete indicates a transfer that failed after balances started
	// to be written. The transaction was rolled back; the failure must be alerted on.
	ErrTransferIncomplete = errors.Wrap(errors.ErrTransferIncomplete, "transfer could not be completed")
)
