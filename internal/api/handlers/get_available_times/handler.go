package get_available_times

import (
	"net/http"

	"github.com/m04kA/LittleLemon-Booking/internal/api/handlers"
	getAvailableTimes "github.com/m04kA/LittleLemon-Booking/internal/usecase/get_available_times"
)

const msgFetchFailed = "Failed to fetch available times"

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-times
// Query params: date (YYYY-MM-DD; пустая или нераспознанная дата обслуживается как будний день)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /available-times - Failed to get times: date=%q, error=%v", date, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFetchFailed, err.Error())
		return
	}

	h.logger.Info("GET /available-times - Times retrieved: date=%q, day_kind=%s, available=%d, unavailable=%d",
		date, result.DayKind, len(result.AvailableTimes), len(result.UnavailableTimes))
	handlers.RespondData(w, http.StatusOK, FromUseCaseResponse(result))
}
