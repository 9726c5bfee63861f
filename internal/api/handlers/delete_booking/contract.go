package delete_booking

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	Delete(ctx context.Context, id int64, caller models.Caller) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
