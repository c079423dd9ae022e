package domain

import "strings"

// Status is the lifecycle status of a card.
type Status string

const (
	// StatusActive cards can send and receive transfers.
	StatusActive Status = "ACTIVE"
	// StatusInactive is reserved for future provisioning flows; no transition leads to it.
	StatusInactive Status = "INACTIVE"
	// StatusBlocked cards are frozen until activated again.
	StatusBlocked Status = "BLOCKED"
)

// ParseStatus converts s (case-insensitive) into a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusActive, StatusInactive, StatusBlocked:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusBlocked:
		return true
	}
	return false
}

// Apply returns the status reached by performing action from s.
//
//	activate      any except ACTIVE  -> ACTIVE
//	block (admin) any except BLOCKED -> BLOCKED
//	block (user)  any                -> BLOCKED
//
// Ownership for ActionBlockByUser is checked separately by Authorize.
func (s Status) Apply(action Action) (Status, error) {
	switch action {
	case ActionActivate:
		if s == StatusActive {
			return s, ErrCardAlreadyActive
		}
		return StatusActive, nil
	case ActionBlockByAdmin:
		if s == StatusBlocked {
			return s, ErrCardAlreadyBlocked
		}
		return StatusBlocked, nil
	case ActionBlockByUser:
		return StatusBlocked, nil
	default:
		return s, ErrUnsupportedAction
	}
}
