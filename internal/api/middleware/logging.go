package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// LoggingMiddleware пишет в лог метод, путь, код ответа и длительность запроса
func LoggingMiddleware(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			if rec.status >= http.StatusInternalServerError {
				logger.Error("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
				return
			}
			logger.Info("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
		})
	}
}
