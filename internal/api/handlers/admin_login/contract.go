package admin_login

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/users/models"
)

type UsersService interface {
	AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
