package get_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

type CatalogService interface {
	SortedRooms(ctx context.Context) ([]domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
