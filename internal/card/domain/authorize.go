package domain

import "github.com/google/uuid"

// Action names an operation performed on a card.
type Action string

const (
	ActionViewBalance  Action = "view_balance"
	ActionTransferFrom Action = "transfer_from"
	ActionTransferTo   Action = "transfer_to"
	ActionBlockByUser  Action = "block_by_user"
	ActionBlockByAdmin Action = "block_by_admin"
	ActionActivate     Action = "activate"
)

// ownerActions are the actions a caller may perform only on cards they own.
var ownerActions = map[Action]struct{}{
	ActionViewBalance:  {},
	ActionTransferFrom: {},
	ActionTransferTo:   {},
	ActionBlockByUser:  {},
}

// Authorize reports whether callerID may perform action on card.
//
// Administrative actions are gated by role before reaching the ledger and are
// always allowed here.
func Authorize(callerID uuid.UUID, card *Card, action Action) error {
	if _, ok := ownerActions[action]; !ok {
		return nil
	}
	if card == nil || card.OwnerID != callerID {
		return ErrCardNotOwned
	}
	return nil
}
