package check_time_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/LittleLemon-Booking/internal/api/handlers"
	checkTimeAvailability "github.com/m04kA/LittleLemon-Booking/internal/usecase/check_time_availability"
)

const (
	msgCheckFailed      = "Failed to check time availability"
	msgTimeSlotNotFound = "Time slot not found"
)

type Handler struct {
	useCase CheckTimeAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckTimeAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-times/check
// Query params: date (YYYY-MM-DD), time (HH:MM)
// Нераспознанная дата обслуживается как будний день; время вне таблицы дня даёт 404
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	timeStr := r.URL.Query().Get("time")

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &checkTimeAvailability.Request{Date: date, Time: timeStr})
	if err != nil {
		switch {
		case errors.Is(err, checkTimeAvailability.ErrTimeSlotNotFound):
			h.logger.Warn("GET /available-times/check - Time slot not found: date=%q, time=%q", date, timeStr)
			handlers.RespondNotFound(w, msgTimeSlotNotFound)

		default:
			h.logger.Error("GET /available-times/check - Failed to check slot: date=%q, time=%q, error=%v", date, timeStr, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCheckFailed, err.Error())
		}
		return
	}

	h.logger.Info("GET /available-times/check - Slot checked: date=%q, time=%q, available=%t", date, timeStr, result.Available)
	handlers.RespondData(w, http.StatusOK, FromUseCaseResponse(result))
}
