package manage_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

type CatalogService interface {
	ListRooms(ctx context.Context, adminPass string) ([]domain.Room, error)
	UpsertRoom(ctx context.Context, adminPass string, raw map[string]any) (*domain.Room, error)
	DeleteRoom(ctx context.Context, adminPass string, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
