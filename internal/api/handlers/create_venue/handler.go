package create_venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	venuesService "github.com/m04kA/SMC-VenueBookingService/internal/service/venues"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "название и положительная вместимость обязательны"
	msgAccessDenied       = "создание площадок доступно только администратору"
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

// Handle POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /venues - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), identity.Role, &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("POST /venues - Access denied: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("POST /venues - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /venues - Failed to create venue: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created: venue_id=%d, user_id=%d", result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
