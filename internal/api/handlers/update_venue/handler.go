package update_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	venuesService "github.com/m04kA/SMC-VenueBookingService/internal/service/venues"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVenueID     = "некорректный ID площадки"
	msgVenueNotFound      = "площадка не найдена"
	msgInvalidInput       = "название и положительная вместимость обязательны"
	msgAccessDenied       = "изменение площадок доступно только администратору"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /venues/{id} - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /venues/{id} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req models.UpdateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), identity.Role, venueID, &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("PUT /venues/{id} - Access denied: venue_id=%d, user_id=%d", venueID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/{id} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id} - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /venues/{id} - Failed to update venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id} - Venue updated: venue_id=%d, user_id=%d", venueID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
