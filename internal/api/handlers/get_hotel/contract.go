package get_hotel

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/service/hotel/models"
)

type HotelService interface {
	PublicProfile(ctx context.Context) (*models.PublicProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
