package get_availability

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель свободного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VenueID   int64          `json:"venueId"`
	Date      string         `json:"date"`
	Available bool           `json:"available"`
	Slots     []SlotResponse `json:"slots,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		VenueID:   resp.VenueID,
		Date:      resp.Date.Format(domain.DateFormat),
		Available: resp.Available,
	}

	for _, slot := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			StartTime: slot.Start.String(),
			EndTime:   slot.End.String(),
		})
	}

	return result
}
