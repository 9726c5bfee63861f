package update_booking_status

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
