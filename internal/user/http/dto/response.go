package dto

import (
	"time"

	userDomain "github.com/allisson/cardledger/internal/user/domain"
)

// UserResponse is the public representation of a user. The password hash is never exposed.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries an issued access token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ListUsersResponse is a page of users.
type ListUsersResponse struct {
	Data []UserResponse `json:"data"`
}

// MapUserToResponse converts a domain user into its response.
func MapUserToResponse(user *userDomain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// MapUsersToListResponse converts a page of users into its response.
func MapUsersToListResponse(users []*userDomain.User) ListUsersResponse {
	data := make([]UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, MapUserToResponse(user))
	}
	return ListUsersResponse{Data: data}
}

// MapTokenToResponse converts an access token into a login response.
func MapTokenToResponse(token *userDomain.AccessToken) LoginResponse {
	return LoginResponse{
		AccessToken: token.Token,
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt,
	}
}
