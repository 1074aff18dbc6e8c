package create_booking

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

type BookingService interface {
	Create(ctx context.Context, raw map[string]any) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
