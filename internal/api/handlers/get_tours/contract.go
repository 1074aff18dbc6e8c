package get_tours

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

type CatalogService interface {
	SortedTours(ctx context.Context) ([]domain.Tour, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
