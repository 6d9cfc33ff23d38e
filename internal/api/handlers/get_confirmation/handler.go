package get_confirmation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LittleLemon-Booking/internal/api/handlers"
	submitBookingHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/submit_booking"
	"github.com/m04kA/LittleLemon-Booking/internal/api/middleware"
	"github.com/m04kA/LittleLemon-Booking/internal/service/confirmation"
)

const msgBookingNotFound = "Booking not found"

type Handler struct {
	service ConfirmationService
	logger  Logger
}

func NewHandler(service ConfirmationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/confirmations/{confirmationNumber}
// Ищет запись в сессии посетителя (cookie) или в сессии из query параметра sessionId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["confirmationNumber"]

	scope := r.URL.Query().Get("sessionId")
	if scope == "" {
		if s, ok := middleware.SessionFromContext(r.Context()); ok {
			scope = s.ID()
		}
	}

	record, err := h.service.Retrieve(r.Context(), scope, number)
	if err != nil {
		switch {
		case errors.Is(err, confirmation.ErrNotFound):
			h.logger.Warn("GET /confirmations/{number} - Not found: number=%q", number)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /confirmations/{number} - Failed to retrieve: number=%q, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /confirmations/{number} - Booking retrieved: booking_id=%s", record.BookingID)
	handlers.RespondData(w, http.StatusOK, submitBookingHandler.FromDomain(record))
}
