package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// fakeBookingRepo in-memory репозиторий бронирований.
// Потокобезопасность обеспечивает fakeTxManager, сериализующий транзакции.
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	stored := *booking
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.bookings = append(f.bookings, &stored)

	copied := stored
	return &copied, nil
}

func (f *fakeBookingRepo) GetActiveByVenueAndDate(_ context.Context, venueID int64, date time.Time) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.VenueID == venueID && b.BookingDate.Equal(date) && b.IsActive() {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakeVenueRepo struct {
	existing map[int64]bool
}

func (f *fakeVenueRepo) Exists(_ context.Context, id int64) (bool, error) {
	return f.existing[id], nil
}

// fakeTxManager сериализует транзакции мьютексом - конкурентные
// check-then-act секции выполняются строго по очереди, как и в
// настоящей сериализуемой транзакции с FOR UPDATE.
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase() (*UseCase, *fakeBookingRepo) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(
		repo,
		&fakeVenueRepo{existing: map[int64]bool{1: true}},
		&fakeTxManager{},
		nopLogger{},
	)
	return uc, repo
}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func request(userID int64, start, end string) *Request {
	return &Request{
		UserID:    userID,
		VenueID:   1,
		Date:      testDate(),
		StartTime: types.MustTimeString(start),
		EndTime:   types.MustTimeString(end),
	}
}

func TestExecute_Success(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), request(10, "09:00", "11:00"))
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, int64(10), resp.UserID)
	assert.Equal(t, int64(1), resp.VenueID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "09:00", resp.StartTime.String())
	assert.Equal(t, "11:00", resp.EndTime.String())
}

func TestExecute_ConflictWithActiveBooking(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), request(10, "09:00", "11:00"))
	require.NoError(t, err)

	// Пересекающийся интервал другого пользователя
	_, err = uc.Execute(context.Background(), request(20, "10:00", "12:00"))
	require.ErrorIs(t, err, ErrIntervalNotAvailable)
}

func TestExecute_TouchingIntervalsAllowed(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), request(10, "09:00", "11:00"))
	require.NoError(t, err)

	// Конец одного интервала совпадает с началом другого - это не конфликт
	_, err = uc.Execute(context.Background(), request(20, "11:00", "12:00"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), request(30, "08:00", "09:00"))
	require.NoError(t, err)
}

func TestExecute_CancelledBookingFreesInterval(t *testing.T) {
	uc, repo := newTestUseCase()

	resp, err := uc.Execute(context.Background(), request(10, "09:00", "11:00"))
	require.NoError(t, err)

	repo.mu.Lock()
	for _, b := range repo.bookings {
		if b.ID == resp.ID {
			b.Status = domain.StatusCancelled
		}
	}
	repo.mu.Unlock()

	// Отменённое бронирование больше не занимает интервал
	_, err = uc.Execute(context.Background(), request(20, "09:00", "11:00"))
	require.NoError(t, err)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), request(10, "11:00", "09:00"))
	require.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = uc.Execute(context.Background(), request(10, "09:00", "09:00"))
	require.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), request(0, "09:00", "11:00"))
	require.ErrorIs(t, err, ErrInvalidInput)

	req := request(10, "09:00", "11:00")
	req.Date = time.Time{}
	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	req := request(10, "09:00", "11:00")
	req.VenueID = 42
	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_ConcurrentOverlappingRequests(t *testing.T) {
	uc, repo := newTestUseCase()

	const workers = 16

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Интервалы разные, но попарно пересекающиеся
			start, _ := types.MustTimeString("09:00").AddMinutes(i * 5)
			end, _ := start.AddMinutes(120)
			_, errs[i] = uc.Execute(context.Background(), &Request{
				UserID:    int64(i + 1),
				VenueID:   1,
				Date:      testDate(),
				StartTime: start,
				EndTime:   end,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, ErrIntervalNotAvailable)
		}
	}
	assert.Equal(t, 1, succeeded)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.bookings, 1)
}
