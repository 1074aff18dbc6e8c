package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-HotelContentService/internal/api/handlers"
)

const msgPasswordRequired = "требуется админ-пароль"

// AdminAuth отклоняет запросы без заголовка X-Admin-Password.
// Сверка пароля с документом происходит внутри сервисов — здесь только
// проверка наличия заголовка.
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handlers.AdminPassword(r) == "" {
			handlers.RespondUnauthorized(w, msgPasswordRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
