package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь может видеть только своё бронирование, админ - любое.
func (s *Service) GetByID(ctx context.Context, id int64, caller models.Caller) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, caller.UserID)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && !booking.IsOwnedBy(caller.UserID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает список бронирований.
// Обычный пользователь получает только свои бронирования, админ - все.
// Опционально фильтрует по статусу.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for user=%d, role=%s, status=%v",
		req.Caller.UserID, req.Caller.Role, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for user=%d", *req.Status, req.Caller.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	var (
		bookings []*domain.Booking
		err      error
	)
	if req.Caller.IsAdmin() {
		bookings, err = s.bookingRepo.GetAll(ctx, domainStatus)
	} else {
		bookings, err = s.bookingRepo.GetByUserID(ctx, req.Caller.UserID, domainStatus)
	}
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Caller.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for user=%d", len(bookings), req.Caller.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования по таблице переходов.
// Подтверждение и отклонение доступны только админу, отмена pending -
// владельцу или админу, отмена confirmed - только админу.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d, new status=%s, user=%d", id, req.Status, req.Caller.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := booking.IsOwnedBy(req.Caller.UserID)
	if err := domain.CanTransition(booking.Status, newStatus, req.Caller.Role, isOwner); err != nil {
		s.logger.Warn("UpdateStatus: transition %s -> %s denied for user=%d, booking id=%d: %v",
			booking.Status, newStatus, req.Caller.UserID, id, err)
		return nil, mapLifecycleError(err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus

	s.logger.Info("UpdateStatus: booking id=%d moved to status=%s", id, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Delete физически удаляет бронирование.
// Пользователь может удалить только своё неподтверждённое бронирование,
// админ - любое.
func (s *Service) Delete(ctx context.Context, id int64, caller models.Caller) error {
	s.logger.Info("Delete: booking id=%d, user=%d", id, caller.UserID)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.CanRemove(booking.Status, caller.Role, booking.IsOwnedBy(caller.UserID)); err != nil {
		s.logger.Warn("Delete: removal denied for user=%d, booking id=%d: %v", caller.UserID, id, err)
		return mapLifecycleError(err)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d removed", id)
	return nil
}

// getBooking получает бронирование с маппингом ошибки репозитория
func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// mapLifecycleError конвертирует доменные ошибки жизненного цикла в ошибки сервиса
func mapLifecycleError(err error) error {
	switch {
	case errors.Is(err, domain.ErrConfirmedNeedsAdmin):
		return ErrConfirmedNeedsAdmin
	case errors.Is(err, domain.ErrTransitionForbidden):
		return ErrAccessDenied
	case errors.Is(err, domain.ErrTransitionNotAllowed):
		return ErrTransitionNotAllowed
	default:
		return err
	}
}
