package confirmation

import (
	"context"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// SlotRepository интерфейс хранилища последней записи бронирования
type SlotRepository interface {
	Save(ctx context.Context, scope string, booking *domain.BookingRecord) error
	Load(ctx context.Context, scope string) (*domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
