package dto

import "eterno_memorial/internal/domain/models"

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token" validate:"required"`
	User    UserResponse `json:"user"`
}

type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (r LoginResponse) ToDomain() models.LoginResult {
	return models.LoginResult{
		Token: r.Token,
		User: models.User{
			Email: r.User.Email,
			Name:  r.User.Name,
		},
	}
}
