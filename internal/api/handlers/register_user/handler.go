package register_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	usersService "github.com/m04kA/SMC-VenueBookingService/internal/service/users"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "email уже занят"
	msgInvalidInput       = "некорректные данные регистрации"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/register - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
