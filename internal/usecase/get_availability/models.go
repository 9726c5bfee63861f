package get_availability

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Request модель запроса доступности площадки на дату.
// Если Time задано, проверяется один конкретный слот [Time, Time+granularity),
// иначе возвращается полный список свободных слотов дня.
type Request struct {
	VenueID int64
	Date    time.Time
	Time    *types.TimeString
}

// Response модель ответа с доступностью
type Response struct {
	VenueID   int64
	Date      time.Time
	Available bool
	Slots     []domain.Slot // заполняется только для запроса всего дня
}
