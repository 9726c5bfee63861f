package delete_venue

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

type VenuesService interface {
	Delete(ctx context.Context, role domain.Role, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
