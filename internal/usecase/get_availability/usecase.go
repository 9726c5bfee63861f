package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// UseCase use case для получения доступности площадки на дату
type UseCase struct {
	bookingRepo   BookingRepository
	venueRepo     VenueRepository
	businessHours domain.TimeInterval
	granularity   int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// businessHours и granularity приходят из конфигурации сервиса.
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	businessHours domain.TimeInterval,
	granularityMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		venueRepo:     venueRepo,
		businessHours: businessHours,
		granularity:   granularityMinutes,
		logger:        logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: venue=%d, date=%s, time=%v",
		req.VenueID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки
	exists, err := uc.venueRepo.Exists(ctx, req.VenueID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to check venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to check venue: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("GetAvailability: venue id=%d not found", req.VenueID)
		return nil, ErrVenueNotFound
	}

	// 3. Занятые интервалы площадки на дату (pending/confirmed)
	bookings, err := uc.bookingRepo.GetActiveByVenueAndDate(ctx, req.VenueID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get active bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get active bookings: %v", ErrInternal, err)
	}
	busy := domain.BusyIntervals(bookings)

	// 4a. Проверка одного слота, если время указано
	if req.Time != nil {
		end, err := req.Time.AddMinutes(uc.granularity)
		if err != nil {
			uc.logger.Warn("GetAvailability: slot end out of range for time=%s", req.Time)
			return nil, fmt.Errorf("%w: slot end out of range: %v", ErrInvalidInput, err)
		}

		candidate := domain.TimeInterval{Start: *req.Time, End: end}
		available := isAvailable(candidate, busy)

		uc.logger.Info("GetAvailability: venue=%d, slot=%s available=%t",
			req.VenueID, candidate, available)

		return &Response{
			VenueID:   req.VenueID,
			Date:      req.Date,
			Available: available,
		}, nil
	}

	// 4b. Полный отчёт: свободные слоты дня по сетке
	free := computeFreeSlots(uc.businessHours, uc.granularity, busy)

	uc.logger.Info("GetAvailability: venue=%d, date=%s, %d free slots",
		req.VenueID, req.Date.Format(domain.DateFormat), len(free))

	return &Response{
		VenueID:   req.VenueID,
		Date:      req.Date,
		Available: len(free) > 0,
		Slots:     free,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
