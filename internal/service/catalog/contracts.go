package catalog

import (
	"context"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

// DocumentStore интерфейс хранилища документа
type DocumentStore interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
