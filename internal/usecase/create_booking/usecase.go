package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
)

// pgSerializationFailure код ошибки PostgreSQL при конфликте сериализуемых транзакций
const pgSerializationFailure = "40001"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в сериализуемой транзакции
// с блокировкой бронирований площадки на дату (FOR UPDATE) - два
// конкурентных запроса на пересекающиеся интервалы не могут пройти оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, venue=%d, date=%s, interval=%s-%s",
		req.UserID, req.VenueID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки
	exists, err := uc.venueRepo.Exists(ctx, req.VenueID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to check venue: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateBooking: venue id=%d not found", req.VenueID)
		return nil, ErrVenueNotFound
	}

	var result *domain.Booking

	// 3. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Занятые интервалы площадки на дату (pending/confirmed, FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByVenueAndDate(txCtx, req.VenueID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get active bookings: %v", err)
			return fmt.Errorf("%w: failed to get active bookings: %v", ErrInternal, err)
		}

		// 3.2. Проверяем пересечение с занятыми интервалами
		if domain.HasConflict(req.Interval(), domain.BusyIntervals(bookings)) {
			uc.logger.Warn("CreateBooking: interval %s-%s conflicts with an active booking, venue=%d, date=%s",
				req.StartTime, req.EndTime, req.VenueID, req.Date.Format(domain.DateFormat))
			return ErrIntervalNotAvailable
		}

		// 3.3. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			UserID:      req.UserID,
			VenueID:     req.VenueID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrIntervalTaken) {
				return ErrIntervalNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации означает, что параллельная транзакция успела
		// занять интервал - для клиента это тот же конфликт доступности
		if isSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization conflict, venue=%d, date=%s",
				req.VenueID, req.Date.Format(domain.DateFormat))
			return nil, ErrIntervalNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return fromDomain(result), nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgSerializationFailure
}
