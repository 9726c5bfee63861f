package venues

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
	"github.com/m04kA/SMC-VenueBookingService/pkg/ptr"
)

type fakeVenueRepo struct {
	nextID int64
	venues map[int64]*domain.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: make(map[int64]*domain.Venue)}
}

func (f *fakeVenueRepo) Create(_ context.Context, venue *domain.Venue) (*domain.Venue, error) {
	f.nextID++
	stored := *venue
	stored.ID = f.nextID
	f.venues[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	copied := *v
	return &copied, nil
}

func (f *fakeVenueRepo) GetAllActive(_ context.Context) ([]*domain.Venue, error) {
	result := make([]*domain.Venue, 0)
	for _, v := range f.venues {
		if v.IsActive {
			copied := *v
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeVenueRepo) Update(_ context.Context, venue *domain.Venue) (*domain.Venue, error) {
	if _, ok := f.venues[venue.ID]; !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	stored := *venue
	f.venues[venue.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeVenueRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.venues[id]; !ok {
		return venueRepo.ErrVenueNotFound
	}
	delete(f.venues, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeVenueRepo) {
	repo := newFakeVenueRepo()
	return NewService(repo, nopLogger{}), repo
}

func TestCreate_AdminOnly(t *testing.T) {
	svc, _ := newTestService()

	req := &models.CreateVenueRequest{Name: "Conference Room A", Capacity: 12}

	_, err := svc.Create(context.Background(), domain.RoleUser, req)
	require.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.Create(context.Background(), domain.RoleAdmin, req)
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Conference Room A", resp.Name)
	assert.True(t, resp.IsActive)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), domain.RoleAdmin, &models.CreateVenueRequest{Name: " ", Capacity: 5})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), domain.RoleAdmin, &models.CreateVenueRequest{Name: "Desk 1", Capacity: 0})
	require.ErrorIs(t, err, ErrInvalidInput)

	longName := strings.Repeat("x", domain.MaxVenueNameLength+1)
	_, err = svc.Create(context.Background(), domain.RoleAdmin, &models.CreateVenueRequest{Name: longName, Capacity: 5})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), domain.RoleAdmin, &models.CreateVenueRequest{Name: "Desk 1", Capacity: 1})
	require.NoError(t, err)

	resp, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)

	_, err = svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrVenueNotFound)
}

func TestList_OnlyActiveVenues(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), domain.RoleAdmin, &models.CreateVenueRequest{Name: "Room A", Capacity: 10})
	require.NoError(t, err)
	created, err := svc.Create(context.Background(), domain.RoleAdmin, &models.CreateVenueRequest{Name: "Room B", Capacity: 4})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), domain.RoleAdmin, created.ID, &models.UpdateVenueRequest{IsActive: ptr.Ptr(false)})
	require.NoError(t, err)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, "Room A", resp.Venues[0].Name)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), domain.RoleAdmin, &models.CreateVenueRequest{
		Name:        "Room A",
		Capacity:    10,
		Description: ptr.Ptr("second floor"),
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), domain.RoleAdmin, created.ID, &models.UpdateVenueRequest{
		Capacity: ptr.Ptr(16),
	})
	require.NoError(t, err)

	// Не переданные поля не меняются
	assert.Equal(t, "Room A", resp.Name)
	assert.Equal(t, 16, resp.Capacity)
	require.NotNil(t, resp.Description)
	assert.Equal(t, "second floor", *resp.Description)
	assert.Equal(t, 16, repo.venues[created.ID].Capacity)
}

func TestUpdate_Authorization(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), domain.RoleAdmin, &models.CreateVenueRequest{Name: "Room A", Capacity: 10})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), domain.RoleUser, created.ID, &models.UpdateVenueRequest{Capacity: ptr.Ptr(5)})
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Update(context.Background(), domain.RoleAdmin, 99, &models.UpdateVenueRequest{Capacity: ptr.Ptr(5)})
	require.ErrorIs(t, err, ErrVenueNotFound)

	_, err = svc.Update(context.Background(), domain.RoleAdmin, created.ID, &models.UpdateVenueRequest{Capacity: ptr.Ptr(0)})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), domain.RoleAdmin, &models.CreateVenueRequest{Name: "Room A", Capacity: 10})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), domain.RoleUser, created.ID)
	require.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), domain.RoleAdmin, created.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.venues)

	err = svc.Delete(context.Background(), domain.RoleAdmin, created.ID)
	require.ErrorIs(t, err, ErrVenueNotFound)
}
