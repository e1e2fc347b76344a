package dto

import (
	"time"

	"github.com/spec-kit/recipe-directory/internal/domain"
)

// UserCreateRequest payload for new users.
type UserCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse is the projection of a user returned by the API.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse projects a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
