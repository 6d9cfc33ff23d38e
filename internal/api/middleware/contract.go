package middleware

import (
	"time"

	"github.com/m04kA/LittleLemon-Booking/internal/service/sessions"
)

// HTTPMetrics интерфейс сбора метрик HTTP-запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// SessionStore интерфейс реестра сессий формы
type SessionStore interface {
	GetOrCreate(id string) (*sessions.Session, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
