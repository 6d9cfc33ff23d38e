package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LittleLemon-Booking/internal/service/sessions"
)

// SessionCookieName имя cookie с идентификатором сессии формы
const SessionCookieName = "ll_session"

type sessionKey struct{}

// WithSession кладёт сессию в контекст
func WithSession(ctx context.Context, s *sessions.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext достаёт сессию из контекста
func SessionFromContext(ctx context.Context) (*sessions.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*sessions.Session)
	return s, ok && s != nil
}

// SessionMiddleware находит сессию посетителя по cookie или открывает новую
func SessionMiddleware(store SessionStore, secure bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(SessionCookieName); err == nil {
				id = c.Value
			}

			s, created := store.GetOrCreate(id)
			if created {
				SetSessionCookie(w, s.ID(), secure)
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// SetSessionCookie привязывает сессию к браузеру посетителя
func SetSessionCookie(w http.ResponseWriter, id string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
