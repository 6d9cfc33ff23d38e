package check_time_availability

import "time"

// Latency имитирует сетевую задержку mock API (не прерывается)
type Latency interface {
	Wait(d time.Duration)
}

// Random источник случайности для имитации занятых слотов
type Random interface {
	Float64() float64
}

// Metrics интерфейс для сбора метрик
type Metrics interface {
	ObserveSlotCheck(available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
