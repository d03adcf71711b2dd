package dtos

import "medical-appointment-service/internal/domain/entities"

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is an account as shown to clients, without the password.
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func NewUserResponse(u entities.User) UserResponse {
	return UserResponse{Username: u.Username, Email: u.Email, Phone: u.Phone}
}

// LoginResponse returns the matched account and a bearer token for it.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
