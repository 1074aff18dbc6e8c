package uploads

import "errors"

var (
	// ErrEmpty возвращается, когда файл пуст или не передан
	ErrEmpty = errors.New("uploads.saver: empty file")

	// ErrTooLarge возвращается при превышении лимита размера файла
	ErrTooLarge = errors.New("uploads.saver: file too large")

	// ErrNotImage возвращается, когда содержимое файла не является изображением
	ErrNotImage = errors.New("uploads.saver: file is not an image")

	// ErrSave возвращается при ошибке записи файла на диск
	ErrSave = errors.New("uploads.saver: failed to save file")
)
