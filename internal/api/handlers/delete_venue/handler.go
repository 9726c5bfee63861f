package delete_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	venuesService "github.com/m04kA/SMC-VenueBookingService/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
	msgAccessDenied   = "удаление площадок доступно только администратору"
	msgUnauthorized   = "требуется аутентификация"
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

// Handle DELETE /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /venues/{id} - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /venues/{id} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	if err := h.service.Delete(r.Context(), identity.Role, venueID); err != nil {
		switch {
		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("DELETE /venues/{id} - Access denied: venue_id=%d, user_id=%d", venueID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("DELETE /venues/{id} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("DELETE /venues/{id} - Failed to delete venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /venues/{id} - Venue deleted: venue_id=%d, user_id=%d", venueID, identity.UserID)
	w.WriteHeader(http.StatusNoContent)
}
