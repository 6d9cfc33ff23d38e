package pages

import (
	"context"
	"time"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

type ConfirmationService interface {
	Retrieve(ctx context.Context, scope, confirmationNumber string) (*domain.BookingRecord, error)
}

type Clock interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
