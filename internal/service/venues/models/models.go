package models

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Request модели

// CreateVenueRequest запрос на создание площадки
type CreateVenueRequest struct {
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description,omitempty"`
}

// ToDomain конвертирует request в domain модель.
// Новая площадка всегда активна.
func (r *CreateVenueRequest) ToDomain() *domain.Venue {
	return &domain.Venue{
		Name:        r.Name,
		Capacity:    r.Capacity,
		Description: r.Description,
		IsActive:    true,
	}
}

// UpdateVenueRequest запрос на частичное обновление площадки.
// Обновляются только переданные поля.
type UpdateVenueRequest struct {
	Name        *string `json:"name,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ApplyTo накладывает переданные поля на существующую площадку
func (r *UpdateVenueRequest) ApplyTo(venue *domain.Venue) {
	if r.Name != nil {
		venue.Name = *r.Name
	}
	if r.Capacity != nil {
		venue.Capacity = *r.Capacity
	}
	if r.Description != nil {
		venue.Description = r.Description
	}
	if r.IsActive != nil {
		venue.IsActive = *r.IsActive
	}
}

// Response модели

// VenueResponse ответ с данными площадки
type VenueResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// Методы конвертации

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	return &VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Capacity:    v.Capacity,
		Description: v.Description,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// FromDomainVenueList конвертирует список domain моделей в DTO
func FromDomainVenueList(venues []*domain.Venue) *VenueListResponse {
	result := make([]VenueResponse, 0, len(venues))
	for _, v := range venues {
		result = append(result, *FromDomainVenue(v))
	}
	return &VenueListResponse{Venues: result}
}
