package access

import "errors"

// ErrUnauthorized возвращается при пустом или неверном админ-пароле
var ErrUnauthorized = errors.New("access: unauthorized")
