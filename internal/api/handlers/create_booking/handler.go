package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidTimeRange     = "время начала должно быть раньше времени окончания"
	msgVenueNotFound        = "площадка не найдена"
	msgIntervalNotAvailable = "выбранный интервал времени уже занят"
	msgInvalidInput         = "некорректные данные бронирования"
	msgUnauthorized         = "требуется аутентификация"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrIntervalNotAvailable):
			h.logger.Warn("POST /bookings - Interval not available: user_id=%d, venue_id=%d",
				identity.UserID, req.VenueID)
			handlers.RespondConflict(w, msgIntervalNotAvailable)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: user_id=%d, interval=%s-%s",
				identity.UserID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, venue_id=%d, error=%v",
				identity.UserID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, venue_id=%d",
		result.ID, identity.UserID, req.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
