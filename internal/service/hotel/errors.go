package hotel

import "errors"

var (
	// ErrUnauthorized возвращается при неверном админ-пароле
	ErrUnauthorized = errors.New("hotel.service: unauthorized")

	// ErrPasswordTooShort возвращается, когда новый пароль короче 6 символов
	ErrPasswordTooShort = errors.New("hotel.service: password too short")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("hotel.service: internal error")
)
