package get_confirmation

import (
	"context"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

type ConfirmationService interface {
	Retrieve(ctx context.Context, scope, confirmationNumber string) (*domain.BookingRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
