package middleware

import (
	"net/http"

	"quizbank/internal/session"
)

// RequireAuth пускает дальше только авторизованных пользователей,
// остальных отправляет на страницу входа.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.Current(r); !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRoles - middleware для проверки нескольких ролей. Проверка
// выполняется до любого чтения или записи данных.
func RequireRoles(sessions *session.Manager, allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := sessions.Current(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			success := false
			for _, value := range allowedRoles {
				if identity.Role == value {
					success = true
				}
			}

			if !success {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
