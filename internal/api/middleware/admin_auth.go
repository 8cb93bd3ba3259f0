package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
)

// AdminPasswordHeader заголовок с паролем администратора
const AdminPasswordHeader = "X-Admin-Password"

const (
	msgAdminDisabled     = "Área administrativa desativada."
	msgAdminUnauthorized = "Senha de administrador inválida."
)

// AdminSession данные аутентифицированного запроса администратора
type AdminSession struct {
	ID              string
	AuthenticatedAt time.Time
}

// AdminAuth пропускает запрос, только если X-Admin-Password совпадает с bcrypt-хешем
// Пустой хеш означает, что админка отключена: все запросы получают 503
func AdminAuth(passwordHash string, timeProvider TimeProvider, logger Logger) mux.MiddlewareFunc {
	hash := []byte(passwordHash)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(hash) == 0 {
				logger.Warn("%s %s - Admin access is disabled", r.Method, r.URL.Path)
				handlers.RespondServiceUnavailable(w, msgAdminDisabled)
				return
			}

			password := r.Header.Get(AdminPasswordHeader)
			if password == "" {
				logger.Warn("%s %s - Missing admin password", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgAdminUnauthorized)
				return
			}

			if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
				logger.Warn("%s %s - Invalid admin password: client=%s", r.Method, r.URL.Path, clientKey(r, false))
				handlers.RespondUnauthorized(w, msgAdminUnauthorized)
				return
			}

			session := AdminSession{
				ID:              uuid.NewString(),
				AuthenticatedAt: timeProvider.Now(),
			}
			ctx := context.WithValue(r.Context(), ctxKeyAdminSession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminSessionFromContext возвращает сессию, сохраненную AdminAuth
func AdminSessionFromContext(ctx context.Context) (AdminSession, bool) {
	session, ok := ctx.Value(ctxKeyAdminSession).(AdminSession)
	return session, ok
}
