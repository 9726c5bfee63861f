package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime    = "некорректный формат времени, ожидается HH:MM"
	msgVenueNotFound  = "площадка не найдена"
	msgInvalidInput   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability?date=2025-10-15&time=09:00
// Без параметра time возвращает все свободные слоты дня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailability.Request{
		VenueID: venueID,
		Date:    date,
	}

	if timeParam := r.URL.Query().Get("time"); timeParam != "" {
		slotTime, err := types.NewTimeStringFromString(timeParam)
		if err != nil {
			h.logger.Warn("GET /venues/{id}/availability - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.Time = &slotTime
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/availability - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /venues/{id}/availability - Failed to get availability: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/availability - Availability fetched: venue_id=%d, date=%s, available=%t",
		venueID, r.URL.Query().Get("date"), result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
