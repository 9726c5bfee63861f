package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByVenueAndDate(ctx context.Context, venueID int64, date time.Time) ([]*domain.Booking, error)
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
