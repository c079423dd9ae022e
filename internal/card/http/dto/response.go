package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cardDomain "github.com/allisson/cardledger/internal/card/domain"
)

// formatAmount renders money as a decimal string with two fractional digits.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(cardDomain.BalanceScale)
}

// CreateCardResponse is returned after a card is issued.
type CreateCardResponse struct {
	ID           string    `json:"id"`
	MaskedNumber string    `json:"masked_number"`
	OwnerID      string    `json:"owner_id"`
	ExpiryDate   string    `json:"expiry_date"`
	Status       string    `json:"status"`
	Balance      string    `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserCardResponse is a card as shown to its owner.
type UserCardResponse struct {
	ID           string `json:"id"`
	MaskedNumber string `json:"masked_number"`
	ExpiryDate   string `json:"expiry_date"`
	Status       string `json:"status"`
	Balance      string `json:"balance"`
}

// AdminCardResponse is a card as shown to administrators.
type AdminCardResponse struct {
	ID           string `json:"id"`
	MaskedNumber string `json:"masked_number"`
	ExpiryDate   string `json:"expiry_date"`
	Status       string `json:"status"`
	OwnerID      string `json:"owner_id"`
}

// ListUserCardsResponse is a page of the caller's cards.
type ListUserCardsResponse struct {
	Data []UserCardResponse `json:"data"`
}

// ListAdminCardsResponse is a page of all cards.
type ListAdminCardsResponse struct {
	Data []AdminCardResponse `json:"data"`
}

// BalanceResponse carries the balance of one card.
type BalanceResponse struct {
	CardID  string `json:"card_id"`
	Balance string `json:"balance"`
}

// MapCreatedCardToResponse converts an issued card into its response.
func MapCreatedCardToResponse(card *cardDomain.CreatedCard) CreateCardResponse {
	return CreateCardResponse{
		ID:           card.ID.String(),
		MaskedNumber: card.MaskedNumber,
		OwnerID:      card.OwnerID.String(),
		ExpiryDate:   card.ExpiryDate,
		Status:       string(card.Status),
		Balance:      formatAmount(card.Balance),
		CreatedAt:    card.CreatedAt,
	}
}

// MapUserCardsToListResponse converts owner views into a list response.
func MapUserCardsToListResponse(views []*cardDomain.UserCardView) ListUserCardsResponse {
	data := make([]UserCardResponse, 0, len(views))
	for _, v := range views {
		data = append(data, UserCardResponse{
			ID:           v.ID.String(),
			MaskedNumber: v.MaskedNumber,
			ExpiryDate:   v.ExpiryDate,
			Status:       string(v.Status),
			Balance:      formatAmount(v.Balance),
		})
	}
	return ListUserCardsResponse{Data: data}
}

// MapAdminCardsToListResponse converts admin views into a list response.
func MapAdminCardsToListResponse(views []*cardDomain.AdminCardView) ListAdminCardsResponse {
	data := make([]AdminCardResponse, 0, len(views))
	for _, v := range views {
		data = append(data, AdminCardResponse{
			ID:           v.ID.String(),
			MaskedNumber: v.MaskedNumber,
			ExpiryDate:   v.ExpiryDate,
			Status:       string(v.Status),
			OwnerID:      v.OwnerID.String(),
		})
	}
	return ListAdminCardsResponse{Data: data}
}

// MapBalanceToResponse builds a balance response.
func MapBalanceToResponse(cardID uuid.UUID, balance decimal.Decimal) BalanceResponse {
	return BalanceResponse{CardID: cardID.String(), Balance: formatAmount(balance)}
}
