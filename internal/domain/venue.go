package domain

import "time"

// Venue represents a bookable physical resource (room or desk)
type Venue struct {
	ID          int64
	Name        string
	Capacity    int
	Description *string
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
