package manage_categories

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

type CatalogService interface {
	ListCategories(ctx context.Context, adminPass string) ([]domain.Category, error)
	UpsertCategory(ctx context.Context, adminPass string, raw map[string]any) (*domain.Category, error)
	DeleteCategory(ctx context.Context, adminPass string, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
