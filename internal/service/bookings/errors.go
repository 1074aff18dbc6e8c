package bookings

import "errors"

var (
	// ErrUnauthorized возвращается при неверном админ-пароле
	ErrUnauthorized = errors.New("bookings.service: unauthorized")

	// ErrValidation возвращается, когда имя или телефон пусты после обрезки пробелов
	ErrValidation = errors.New("bookings.service: validation failed")

	// ErrInvalidStatus возвращается при статусе вне фиксированного перечня
	ErrInvalidStatus = errors.New("bookings.service: invalid booking status")

	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("bookings.service: internal error")
)
