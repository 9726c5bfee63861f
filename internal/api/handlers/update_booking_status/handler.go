package update_booking_status

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgBookingNotFound      = "бронирование не найдено"
	msgInvalidStatus        = "некорректный статус бронирования"
	msgTransitionNotAllowed = "переход в этот статус невозможен"
	msgAccessDenied         = "нет прав на изменение статуса"
	msgConfirmedNeedsAdmin  = "нельзя отменить подтвержденное бронирование, обратитесь к администратору"
	msgUnauthorized         = "требуется аутентификация"
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

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateStatusRequest{
		Caller: models.Caller{UserID: identity.UserID, Role: identity.Role},
		Status: req.Status,
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid status: booking_id=%d, status=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookingsService.ErrTransitionNotAllowed):
			h.logger.Warn("PATCH /bookings/{id}/status - Transition not allowed: booking_id=%d, status=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgTransitionNotAllowed)

		case errors.Is(err, bookingsService.ErrConfirmedNeedsAdmin):
			h.logger.Warn("PATCH /bookings/{id}/status - Confirmed booking needs admin: booking_id=%d, user_id=%d",
				bookingID, identity.UserID)
			handlers.RespondForbidden(w, msgConfirmedNeedsAdmin)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%d, user_id=%d",
				bookingID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status updated: booking_id=%d, status=%s, user_id=%d",
		bookingID, result.Status, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
