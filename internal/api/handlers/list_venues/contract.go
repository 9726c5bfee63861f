package list_venues

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

type VenuesService interface {
	List(ctx context.Context) (*models.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
