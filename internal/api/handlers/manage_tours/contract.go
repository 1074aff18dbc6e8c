package manage_tours

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

type CatalogService interface {
	ListTours(ctx context.Context, adminPass string) ([]domain.Tour, error)
	UpsertTour(ctx context.Context, adminPass string, raw map[string]any) (*domain.Tour, error)
	DeleteTour(ctx context.Context, adminPass string, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
