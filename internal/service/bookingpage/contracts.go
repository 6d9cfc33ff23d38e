package bookingpage

import (
	"context"

	"github.com/m04kA/LittleLemon-Booking/internal/usecase/get_available_times"
)

// AvailabilityEngine интерфейс use case получения доступного времени
type AvailabilityEngine interface {
	Execute(ctx context.Context, req *get_available_times.Request) (*get_available_times.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
