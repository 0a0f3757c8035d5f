package middleware

import (
	"net/http"
	"strings"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers"
)

const codeUnauthorized = "unauthorized"

// TokenVerifier проверяет токен администратора
type TokenVerifier interface {
	Verify(token string) error
}

// Auth проверяет заголовок Authorization: Bearer <token> на
// административных маршрутах
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, codeUnauthorized)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, codeUnauthorized)
				return
			}

			if err := verifier.Verify(token); err != nil {
				handlers.RespondUnauthorized(w, codeUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
