package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetAll(_ context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(id, userID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		UserID:      userID,
		VenueID:     1,
		BookingDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   types.MustTimeString("09:00"),
		EndTime:     types.MustTimeString("11:00"),
		Status:      status,
	}
}

var (
	owner = models.Caller{UserID: 10, Role: domain.RoleUser}
	other = models.Caller{UserID: 20, Role: domain.RoleUser}
	admin = models.Caller{UserID: 1, Role: domain.RoleAdmin}
)

func TestGetByID_Access(t *testing.T) {
	svc := NewService(newFakeBookingRepo(booking(1, owner.UserID, domain.StatusPending)), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "09:00", resp.StartTime)

	_, err = svc.GetByID(context.Background(), 1, other)
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 1, admin)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 99, owner)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_UserSeesOnlyOwn(t *testing.T) {
	svc := NewService(newFakeBookingRepo(
		booking(1, owner.UserID, domain.StatusPending),
		booking(2, owner.UserID, domain.StatusCancelled),
		booking(3, other.UserID, domain.StatusConfirmed),
	), nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Caller: owner})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	resp, err = svc.List(context.Background(), &models.ListBookingsRequest{Caller: admin})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 3)
}

func TestList_StatusFilter(t *testing.T) {
	svc := NewService(newFakeBookingRepo(
		booking(1, owner.UserID, domain.StatusPending),
		booking(2, owner.UserID, domain.StatusCancelled),
	), nopLogger{})

	pending := "pending"
	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Caller: owner, Status: &pending})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "pending", resp.Bookings[0].Status)

	bad := "unknown"
	_, err = svc.List(context.Background(), &models.ListBookingsRequest{Caller: owner, Status: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_ConfirmRequiresAdmin(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, owner.UserID, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	// Владелец не может подтвердить даже своё бронирование
	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Caller: owner, Status: "confirmed"})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.bookings[1].Status)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Caller: admin, Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
}

func TestUpdateStatus_RejectRequiresAdmin(t *testing.T) {
	svc := NewService(newFakeBookingRepo(booking(1, owner.UserID, domain.StatusPending)), nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Caller: owner, Status: "rejected"})
	require.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Caller: admin, Status: "rejected"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
}

func TestUpdateStatus_CancelPending(t *testing.T) {
	svc := NewService(newFakeBookingRepo(
		booking(1, owner.UserID, domain.StatusPending),
		booking(2, owner.UserID, domain.StatusPending),
		booking(3, owner.UserID, domain.StatusPending),
	), nopLogger{})

	// Владелец и админ могут отменить pending, посторонний - нет
	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Caller: owner, Status: "cancelled"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Caller: admin, Status: "cancelled"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), 3, &models.UpdateStatusRequest{Caller: other, Status: "cancelled"})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_CancelConfirmedNeedsAdmin(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, owner.UserID, domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Caller: owner, Status: "cancelled"})
	require.ErrorIs(t, err, ErrConfirmedNeedsAdmin)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Caller: admin, Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestUpdateStatus_TerminalAndInvalidTransitions(t *testing.T) {
	svc := NewService(newFakeBookingRepo(
		booking(1, owner.UserID, domain.StatusCancelled),
		booking(2, owner.UserID, domain.StatusRejected),
		booking(3, owner.UserID, domain.StatusConfirmed),
	), nopLogger{})

	// Из терминальных статусов переходов нет даже для админа
	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Caller: admin, Status: "confirmed"})
	require.ErrorIs(t, err, ErrTransitionNotAllowed)

	_, err = svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Caller: admin, Status: "pending"})
	require.ErrorIs(t, err, ErrTransitionNotAllowed)

	// Возврат confirmed -> pending запрещён
	_, err = svc.UpdateStatus(context.Background(), 3, &models.UpdateStatusRequest{Caller: admin, Status: "pending"})
	require.ErrorIs(t, err, ErrTransitionNotAllowed)

	_, err = svc.UpdateStatus(context.Background(), 3, &models.UpdateStatusRequest{Caller: admin, Status: "party"})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDelete_Authorization(t *testing.T) {
	repo := newFakeBookingRepo(
		booking(1, owner.UserID, domain.StatusPending),
		booking(2, owner.UserID, domain.StatusConfirmed),
		booking(3, owner.UserID, domain.StatusConfirmed),
	)
	svc := NewService(repo, nopLogger{})

	// Посторонний не может удалить чужое бронирование
	err := svc.Delete(context.Background(), 1, other)
	require.ErrorIs(t, err, ErrAccessDenied)

	// Владелец удаляет своё pending
	err = svc.Delete(context.Background(), 1, owner)
	require.NoError(t, err)

	// Подтверждённое - только через админа
	err = svc.Delete(context.Background(), 2, owner)
	require.ErrorIs(t, err, ErrConfirmedNeedsAdmin)

	err = svc.Delete(context.Background(), 2, admin)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), 99, admin)
	require.ErrorIs(t, err, ErrBookingNotFound)

	_, stillThere := repo.bookings[3]
	assert.True(t, stillThere)
}
