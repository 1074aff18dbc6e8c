package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// URLPrefix путь, по которому раздаются сохранённые файлы
const URLPrefix = "/uploads/"

const thumbWidth = 480

// allowedExts расширения, сохраняемые как есть; всё остальное становится .jpg
var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Saver сохраняет загруженные изображения на диск и возвращает их URL.
// Ядро системы видит только возвращённую строку URL.
type Saver struct {
	dir     string
	maxSize int64
	logger  Logger
}

// NewSaver создает Saver поверх указанной директории
func NewSaver(dir string, maxSize int64, logger Logger) *Saver {
	return &Saver{
		dir:     dir,
		maxSize: maxSize,
		logger:  logger,
	}
}

// SaveImage валидирует и сохраняет изображение, возвращая его URL.
// Содержимое проверяется сниффингом, а не расширением файла. Для форматов,
// которые удаётся декодировать, дополнительно пишется превью <имя>_thumb.jpg;
// неудача с превью не считается ошибкой загрузки.
func (s *Saver) SaveImage(ctx context.Context, r io.Reader, originalName string) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: SaveImage - read upload: %v", ErrSave, err)
	}
	if len(raw) == 0 {
		return "", ErrEmpty
	}
	if int64(len(raw)) > s.maxSize {
		s.logger.Warn("SaveImage: upload exceeds limit of %d bytes", s.maxSize)
		return "", ErrTooLarge
	}

	contentType := http.DetectContentType(raw)
	if !strings.HasPrefix(contentType, "image/") {
		s.logger.Warn("SaveImage: rejected non-image upload (%s)", contentType)
		return "", fmt.Errorf("%w: %s", ErrNotImage, contentType)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExts[ext] {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: SaveImage - create uploads dir: %v", ErrSave, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("%w: SaveImage - write file: %v", ErrSave, err)
	}

	s.writeThumbnail(raw, name)

	s.logger.Info("SaveImage: stored %s (%d bytes, %s)", name, len(raw), contentType)
	return URLPrefix + name, nil
}

// writeThumbnail пишет уменьшенное превью для админки (best-effort)
func (s *Saver) writeThumbnail(raw []byte, name string) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		// webp и прочие недекодируемые форматы остаются без превью
		s.logger.Warn("SaveImage: thumbnail skipped for %s: %v", name, err)
		return
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	thumbPath := filepath.Join(s.dir, base+"_thumb.jpg")
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(85)); err != nil {
		s.logger.Warn("SaveImage: failed to save thumbnail for %s: %v", name, err)
	}
}
