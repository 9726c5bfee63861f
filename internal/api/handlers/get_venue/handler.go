package get_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	venuesService "github.com/m04kA/SMC-VenueBookingService/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
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

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.service.GetByID(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{id} - Failed to get venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id} - Venue fetched: venue_id=%d", venueID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
