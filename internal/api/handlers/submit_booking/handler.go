package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/LittleLemon-Booking/internal/api/handlers"
	submitBooking "github.com/m04kA/LittleLemon-Booking/internal/usecase/submit_booking"
)

const (
	msgSubmitFailed       = "Failed to submit booking"
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Запись не сохраняется: подтверждение доступно только для бронирований из формы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgSubmitFailed, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrMissingRequiredFields):
			h.logger.Warn("POST /bookings - Missing required fields: date=%q, time=%q, guests=%d",
				req.Date, req.Time, req.Guests)
			handlers.RespondBadRequest(w, msgSubmitFailed, msgMissingFields)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: error=%v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSubmitFailed, err.Error())
		}
		return
	}

	h.logger.Info("POST /bookings - Booking confirmed: booking_id=%s, confirmation=%s",
		result.BookingID, result.ConfirmationNumber)
	handlers.RespondData(w, http.StatusCreated, FromUseCaseResponse(result))
}
