package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgBookingNotFound     = "бронирование не найдено"
	msgAccessDenied        = "нет прав на удаление этого бронирования"
	msgConfirmedNeedsAdmin = "нельзя отменить подтвержденное бронирование, обратитесь к администратору"
	msgUnauthorized        = "требуется аутентификация"
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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id} - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	caller := models.Caller{UserID: identity.UserID, Role: identity.Role}

	if err := h.service.Delete(r.Context(), bookingID, caller); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrConfirmedNeedsAdmin):
			h.logger.Warn("DELETE /bookings/{id} - Confirmed booking needs admin: booking_id=%d, user_id=%d",
				bookingID, identity.UserID)
			handlers.RespondForbidden(w, msgConfirmedNeedsAdmin)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%d, user_id=%d",
				bookingID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted: booking_id=%d, user_id=%d",
		bookingID, identity.UserID)
	w.WriteHeader(http.StatusNoContent)
}
