package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID владельца из аутентифицированной сессии
	VenueID   int64            // ID площадки
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Начало интервала, включительно
	EndTime   types.TimeString // Конец интервала, не включительно
}

// Interval возвращает запрошенный интервал
func (r *Request) Interval() domain.TimeInterval {
	return domain.TimeInterval{Start: r.StartTime, End: r.EndTime}
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	UserID      int64
	VenueID     int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		UserID:      b.UserID,
		VenueID:     b.VenueID,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
