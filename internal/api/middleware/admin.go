package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/easeteam/Ease-BookingService/internal/api/handlers"
)

const msgAdminForbidden = "доступ запрещен"

// adminTokenHeader заголовок с административным токеном
const adminTokenHeader = "X-Admin-Token"

// Admin пускает только запросы с корректным административным токеном
// Пустой настроенный токен полностью закрывает админские маршруты
func Admin(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if token == "" || provided == "" ||
				subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusForbidden, msgAdminForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
