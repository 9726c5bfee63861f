package models

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// UserResponse ответ с данными пользователя, без хеша пароля
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
}

// TokenResponse ответ с JWT токеном
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
