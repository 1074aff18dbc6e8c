package catalog

import "errors"

var (
	// ErrUnauthorized возвращается при неверном админ-пароле
	ErrUnauthorized = errors.New("catalog.service: unauthorized")

	// ErrValidation возвращается, когда обязательное поле пусто после обрезки пробелов
	ErrValidation = errors.New("catalog.service: validation failed")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("catalog.service: internal error")
)
