package document

import "errors"

var (
	// ErrNotFound возвращается, когда файл данных ещё не существует
	ErrNotFound = errors.New("document.store: data file not found")

	// ErrRead возвращается при ошибке чтения файла данных
	ErrRead = errors.New("document.store: failed to read data file")

	// ErrCorrupt возвращается, когда содержимое файла не парсится как документ
	ErrCorrupt = errors.New("document.store: data file is corrupt")

	// ErrWrite возвращается при ошибке записи файла данных
	ErrWrite = errors.New("document.store: failed to write data file")
)
