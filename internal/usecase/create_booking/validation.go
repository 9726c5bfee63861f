package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем интервал: оба времени заданы и start < end
	if err := req.Interval().Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidTimeRange) {
			return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
