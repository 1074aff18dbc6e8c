package upload_image

import (
	"context"
	"io"
)

type ImageSaver interface {
	SaveImage(ctx context.Context, r io.Reader, originalName string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
