package sessions

import (
	"context"
	"time"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	"github.com/m04kA/LittleLemon-Booking/internal/usecase/get_available_times"
	"github.com/m04kA/LittleLemon-Booking/internal/usecase/submit_booking"
)

// AvailabilityEngine интерфейс use case получения доступного времени
type AvailabilityEngine interface {
	Execute(ctx context.Context, req *get_available_times.Request) (*get_available_times.Response, error)
}

// BookingSubmitter интерфейс use case отправки бронирования
type BookingSubmitter interface {
	Execute(ctx context.Context, req *submit_booking.Request) (*submit_booking.Response, error)
}

// RecordStore интерфейс сохранения подтверждённой записи
type RecordStore interface {
	Store(ctx context.Context, scope string, booking *domain.BookingRecord) error
}

// Metrics интерфейс для сбора метрик сессий
type Metrics interface {
	SessionOpened()
	SessionClosed()
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
