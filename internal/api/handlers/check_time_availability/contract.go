package check_time_availability

import (
	"context"

	checkTimeAvailability "github.com/m04kA/LittleLemon-Booking/internal/usecase/check_time_availability"
)

type CheckTimeAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkTimeAvailability.Request) (*checkTimeAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
