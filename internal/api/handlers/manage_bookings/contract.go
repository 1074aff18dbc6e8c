package manage_bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

type BookingService interface {
	List(ctx context.Context, adminPass string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, adminPass, id, status string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
