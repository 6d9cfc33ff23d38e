package pages

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LittleLemon-Booking/internal/api/middleware"
	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	"github.com/m04kA/LittleLemon-Booking/internal/service/bookingform"
	"github.com/m04kA/LittleLemon-Booking/internal/service/sessions"
)

const actionRefresh = "refresh"

// Handler HTML-страницы сайта: главная, форма, подтверждение, 404
type Handler struct {
	confirmation ConfirmationService
	clock        Clock
	logger       Logger
	renderer     *renderer
}

func NewHandler(confirmation ConfirmationService, clock Clock, logger Logger) (*Handler, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{
		confirmation: confirmation,
		clock:        clock,
		logger:       logger,
		renderer:     r,
	}, nil
}

// Home GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, pageHome, &pageData{Title: "Home", Body: h.renderer.homeBody})
}

// BookingForm GET /bookings
func (h *Handler) BookingForm(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /bookings - No session in context")
		h.NotFound(w, r)
		return
	}

	// После успешной отправки посетитель начинает с чистой формы
	if s.View().Phase == bookingform.PhaseSubmitted {
		s.Reset()
	}

	h.renderForm(w, http.StatusOK, s.View())
}

// BookingSubmit POST /bookings
// Применяет изменённые поля как события формы; action=refresh только загружает время.
func (h *Handler) BookingSubmit(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /bookings - No session in context")
		h.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /bookings - Invalid form: %v", err)
		h.renderForm(w, http.StatusBadRequest, s.View())
		return
	}

	// 1. Применяем изменения; время применяем после загрузки списка для новой даты
	for _, field := range bookingform.Fields {
		if _, posted := r.PostForm[string(field)]; !posted {
			continue
		}
		// Сравниваем с текущим значением: смена даты могла сбросить время
		value := r.PostForm.Get(string(field))
		if value == s.View().Values.Get(field) {
			continue
		}
		if _, err := s.Dispatch(r.Context(), bookingform.Change{Field: field, Value: value}); err != nil {
			h.logger.Error("POST /bookings - Failed to apply change: field=%s, error=%v", field, err)
			h.renderForm(w, http.StatusBadRequest, s.View())
			return
		}
		if _, err := s.Dispatch(r.Context(), bookingform.Blur{Field: field}); err != nil {
			h.logger.Error("POST /bookings - Failed to apply blur: field=%s, error=%v", field, err)
		}
		if field == bookingform.FieldDate {
			s.WaitIdle()
		}
	}

	if r.PostForm.Get("action") == actionRefresh {
		h.renderForm(w, http.StatusOK, s.View())
		return
	}

	// 2. Отправляем форму
	view, err := s.Dispatch(r.Context(), bookingform.Submit{})
	if err != nil {
		h.logger.Error("POST /bookings - Failed to submit form: %v", err)
		h.renderForm(w, http.StatusInternalServerError, s.View())
		return
	}

	// 3. Успех: переходим к подтверждению
	if view.Redirect != "" {
		h.logger.Info("POST /bookings - Booking confirmed: session=%s, redirect=%s", s.ID(), view.Redirect)
		http.Redirect(w, r, view.Redirect, http.StatusSeeOther)
		return
	}

	status := http.StatusOK
	if view.Phase == bookingform.PhaseValidationFailed {
		status = http.StatusUnprocessableEntity
	}
	h.renderForm(w, status, view)
}

// Confirmation GET /confirmation/{confirmationNumber}
// Любая ошибка поиска ведёт на страницу 404
func (h *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["confirmationNumber"]

	var scope string
	if s, ok := middleware.SessionFromContext(r.Context()); ok {
		scope = s.ID()
	}

	record, err := h.confirmation.Retrieve(r.Context(), scope, number)
	if err != nil {
		h.logger.Warn("GET /confirmation/{number} - Redirecting to not found: number=%q, error=%v", number, err)
		http.Redirect(w, r, domain.NotFoundPath, http.StatusSeeOther)
		return
	}

	h.render(w, http.StatusOK, pageConfirmation, &pageData{Title: "Reservation Confirmed", Record: record})
}

// NotFound страница 404 для неизвестных маршрутов
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, pageNotFound, &pageData{Title: "Page Not Found"})
}

func (h *Handler) renderForm(w http.ResponseWriter, status int, view sessions.View) {
	h.render(w, status, pageBooking, &pageData{Title: "Book Now", Form: fromSessionView(view)})
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data *pageData) {
	data.Year = h.clock.Now().Year()
	if err := h.renderer.render(w, status, name, data); err != nil {
		h.logger.Error("render %s: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
