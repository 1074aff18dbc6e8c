package get_backup

import "context"

type HotelService interface {
	Backup(ctx context.Context, adminPass string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
