package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// Caller идентификация вызывающего из аутентифицированной сессии
type Caller struct {
	UserID int64
	Role   domain.Role
}

// IsAdmin возвращает true для административной роли
func (c Caller) IsAdmin() bool {
	return c.Role.IsAdmin()
}

// ListBookingsRequest запрос на получение списка бронирований.
// Обычный пользователь видит только свои бронирования, админ - все.
type ListBookingsRequest struct {
	Caller Caller
	Status *string // Фильтр по статусу (опционально)
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Caller Caller
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	VenueID     int64  `json:"venueId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "09:00"
	EndTime     string `json:"endTime"`     // "11:00"
	Status      string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		VenueID:     b.VenueID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status, err := domain.ParseBookingStatus(s)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return status, nil
}
