package manage_hotel

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/service/hotel/models"
)

type HotelService interface {
	Patch(ctx context.Context, adminPass string, raw map[string]any) (*models.PublicProfile, error)
	SetVisitorCount(ctx context.Context, adminPass string, raw any) (int, error)
	ChangePassword(ctx context.Context, adminPass, newPassword string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
