package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

// Service сервис для работы с площадками
type Service struct {
	venueRepo VenueRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// Create создает новую площадку. Доступно только админу.
func (s *Service) Create(ctx context.Context, role domain.Role, req *models.CreateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Create: creating venue name=%q", req.Name)

	if !role.IsAdmin() {
		s.logger.Warn("Create: denied, role=%s", role)
		return nil, ErrAccessDenied
	}

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	venue, err := s.venueRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created venue id=%d", venue.ID)
	return models.FromDomainVenue(venue), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VenueResponse, error) {
	s.logger.Info("GetByID: fetching venue id=%d", id)

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVenue(venue), nil
}

// List получает список активных площадок
func (s *Service) List(ctx context.Context) (*models.VenueListResponse, error) {
	s.logger.Info("List: fetching active venues")

	venues, err := s.venueRepo.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d venues", len(venues))
	return models.FromDomainVenueList(venues), nil
}

// Update частично обновляет площадку. Доступно только админу.
func (s *Service) Update(ctx context.Context, role domain.Role, id int64, req *models.UpdateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Update: updating venue id=%d", id)

	if !role.IsAdmin() {
		s.logger.Warn("Update: denied, role=%s", role)
		return nil, ErrAccessDenied
	}

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Update: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Update: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.ApplyTo(venue)

	if err := validateVenue(venue); err != nil {
		s.logger.Warn("Update: validation failed for venue id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.venueRepo.Update(ctx, venue)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Update: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated venue id=%d", id)
	return models.FromDomainVenue(updated), nil
}

// Delete удаляет площадку. Доступно только админу.
func (s *Service) Delete(ctx context.Context, role domain.Role, id int64) error {
	s.logger.Info("Delete: deleting venue id=%d", id)

	if !role.IsAdmin() {
		s.logger.Warn("Delete: denied, role=%s", role)
		return ErrAccessDenied
	}

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Delete: venue id=%d not found", id)
			return ErrVenueNotFound
		}
		s.logger.Error("Delete: repository error for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: venue id=%d removed", id)
	return nil
}

// validateCreateRequest валидирует запрос на создание площадки
func validateCreateRequest(req *models.CreateVenueRequest) error {
	return validateFields(req.Name, req.Capacity, req.Description)
}

// validateVenue валидирует площадку после применения обновлений
func validateVenue(venue *domain.Venue) error {
	return validateFields(venue.Name, venue.Capacity, venue.Description)
}

func validateFields(name string, capacity int, description *string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxVenueNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxVenueNameLength)
	}
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if description != nil && len(*description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}
