// Package access проверка админ-доступа по общему паролю.
package access

import "github.com/m04kA/SMC-HotelContentService/internal/domain"

// Authorize сверяет предъявленный пароль с паролем из текущего документа.
// Пароль хранится открытым текстом, сравнение обычное строковое.
// Функция без побочных эффектов; вызывается перед каждой мутацией.
func Authorize(doc *domain.Document, credential string) error {
	if credential == "" || credential != doc.Hotel.AdminPassword {
		return ErrUnauthorized
	}
	return nil
}
