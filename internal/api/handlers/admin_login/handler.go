package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	usersService "github.com/m04kA/SMC-VenueBookingService/internal/service/users"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
	msgNotAdmin           = "требуется роль администратора"
	msgInvalidInput       = "email и пароль обязательны"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AdminLogin(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/admin/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, usersService.ErrNotAdmin):
			h.logger.Warn("POST /auth/admin/login - Not an admin: email=%s", req.Email)
			handlers.RespondForbidden(w, msgNotAdmin)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /auth/admin/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/admin/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/admin/login - Admin logged in: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
