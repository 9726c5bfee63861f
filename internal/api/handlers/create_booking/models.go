package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID     int64  `json:"venueId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "09:00"
	EndTime     string `json:"endTime"`     // "11:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	VenueID     int64  `json:"venueId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// UserID берется из аутентифицированной сессии, а не из тела запроса.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		VenueID:   r.VenueID,
		Date:      bookingDate,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		VenueID:     resp.VenueID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
