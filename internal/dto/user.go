package dto

import (
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
)

// SignupRequest defines the data needed to register a user.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"max=255"`
}

// LoginRequest defines the login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleExchangeCodeRequest carries the authorization code returned by Google.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse defines the public view of a user.
type UserResponse struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
	}
}
