package get_data

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/service/hotel/models"
)

type HotelService interface {
	PublicData(ctx context.Context) (*models.SiteData, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
