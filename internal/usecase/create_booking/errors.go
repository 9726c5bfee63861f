package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTimeRange возвращается, когда startTime >= endTime
	// или время имеет некорректный формат
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrIntervalNotAvailable возвращается, когда запрошенный интервал
	// пересекается с активным бронированием
	ErrIntervalNotAvailable = errors.New("create_booking: time interval is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
