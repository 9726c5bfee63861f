package update_venue

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

type VenuesService interface {
	Update(ctx context.Context, role domain.Role, id int64, req *models.UpdateVenueRequest) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
