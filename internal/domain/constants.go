package domain

// Default business configuration values
const (
	DefaultBusinessOpen        = "08:00"
	DefaultBusinessClose       = "22:00"
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxVenueNameLength     = 200
	MaxDescriptionLength   = 1000
	MinPasswordLength      = 6
)

// DateFormat формат дат в API и логах, YYYY-MM-DD
const DateFormat = "2006-01-02"

// ActiveStatuses статусы бронирований, занимающих время.
// Используется при выборке занятых интервалов на дату.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
