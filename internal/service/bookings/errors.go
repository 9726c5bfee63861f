package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrConfirmedNeedsAdmin возвращается, когда не-админ пытается отменить
	// или удалить подтверждённое бронирование
	ErrConfirmedNeedsAdmin = errors.New("cannot cancel a confirmed booking, please contact admin")

	// ErrTransitionNotAllowed возвращается при недопустимом переходе статусов
	ErrTransitionNotAllowed = errors.New("status transition not allowed")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
