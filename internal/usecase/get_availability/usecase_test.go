package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/ptr"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetActiveByVenueAndDate(_ context.Context, venueID int64, date time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.VenueID == venueID && b.BookingDate.Equal(date) && b.IsActive() {
			result = append(result, b)
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings ...*domain.Booking) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeVenueRepo{existing: map[int64]bool{1: true}},
		businessDay(),
		60,
		nopLogger{},
	)
}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func booking(venueID int64, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		VenueID:     venueID,
		BookingDate: testDate(),
		StartTime:   types.MustTimeString(start),
		EndTime:     types.MustTimeString(end),
		Status:      status,
	}
}

func TestExecute_FullDayReport(t *testing.T) {
	uc := newTestUseCase(
		booking(1, "09:00", "11:00", domain.StatusConfirmed),
		booking(1, "14:00", "15:00", domain.StatusCancelled), // не занимает время
		booking(2, "12:00", "13:00", domain.StatusPending),   // другая площадка
	)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: testDate()})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, "08:00-09:00", resp.Slots[0].Interval().String())
	assert.Equal(t, "11:00-12:00", resp.Slots[1].Interval().String())
}

func TestExecute_SingleSlotCheck(t *testing.T) {
	uc := newTestUseCase(booking(1, "09:00", "10:00", domain.StatusPending))

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		Date:    testDate(),
		Time:    ptr.Ptr(types.MustTimeString("09:00")),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Empty(t, resp.Slots)

	resp, err = uc.Execute(context.Background(), &Request{
		VenueID: 1,
		Date:    testDate(),
		Time:    ptr.Ptr(types.MustTimeString("10:00")),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{VenueID: 42, Date: testDate()})
	require.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{VenueID: 0, Date: testDate()})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VenueID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
