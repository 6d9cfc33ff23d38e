package submit_booking

import "time"

// Latency имитирует сетевую задержку mock API (не прерывается)
type Latency interface {
	Wait(d time.Duration)
}

// Random источник случайности для номера подтверждения
type Random interface {
	IntN(n int) int
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс для сбора метрик
type Metrics interface {
	ObserveSubmission(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
