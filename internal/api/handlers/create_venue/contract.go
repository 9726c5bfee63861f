package create_venue

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

type VenuesService interface {
	Create(ctx context.Context, role domain.Role, req *models.CreateVenueRequest) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
