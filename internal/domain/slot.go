package domain

import "github.com/m04kA/SMC-VenueBookingService/pkg/types"

// Slot is a fixed-granularity interval used only for availability reporting,
// never persisted
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// Interval returns the slot as a TimeInterval
func (s Slot) Interval() TimeInterval {
	return TimeInterval{Start: s.Start, End: s.End}
}
