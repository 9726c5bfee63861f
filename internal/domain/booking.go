package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a venue booking in the system
type Booking struct {
	ID          int64
	UserID      int64
	VenueID     int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time interval.
// Rejected and cancelled bookings free the slot.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transitions are possible
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected || b.Status == StatusCancelled
}

// Interval returns the booked time interval
func (b *Booking) Interval() TimeInterval {
	return TimeInterval{Start: b.StartTime, End: b.EndTime}
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
