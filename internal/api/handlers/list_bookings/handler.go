package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "некорректный статус бронирования"
	msgUnauthorized  = "требуется аутентификация"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?status=pending
// Обычный пользователь получает только свои бронирования, админ - все.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.ListBookingsRequest{
		Caller: models.Caller{UserID: identity.UserID, Role: identity.Role},
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid status filter: user_id=%d", identity.UserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v",
				identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings: user_id=%d",
		len(result.Bookings), identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
