package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByVenueAndDate(ctx context.Context, venueID int64, date time.Time) ([]*domain.Booking, error)
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
