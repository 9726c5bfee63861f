package domain

import "time"

// User represents a registered user of the system
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}
