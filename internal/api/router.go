package api

import (
	"net/http"

	"github.com/gorilla/mux"

	checkTimeAvailabilityHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/check_time_availability"
	formSessionHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/form_session"
	getAvailableTimesHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/get_available_times"
	getConfirmationHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/get_confirmation"
	"github.com/m04kA/LittleLemon-Booking/internal/api/handlers/pages"
	submitBookingHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/submit_booking"
	"github.com/m04kA/LittleLemon-Booking/internal/api/middleware"
	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// Handlers все обработчики сервиса
type Handlers struct {
	GetAvailableTimes     *getAvailableTimesHandler.Handler
	CheckTimeAvailability *checkTimeAvailabilityHandler.Handler
	SubmitBooking         *submitBookingHandler.Handler
	GetConfirmation       *getConfirmationHandler.Handler
	FormSession           *formSessionHandler.Handler
	Pages                 *pages.Handler
}

// Options необязательные части маршрутизатора
type Options struct {
	// Metrics nil отключает HTTP метрики
	Metrics        middleware.HTTPMetrics
	MetricsPath    string
	MetricsHandler http.Handler
	// RateLimiter nil отключает ограничение частоты
	// (изменяющие запросы API и маршруты, открывающие сессию)
	RateLimiter   *middleware.RateLimiter
	SecureCookies bool
	Logger        middleware.Logger
}

// NewRouter собирает маршруты сервиса
func NewRouter(h *Handlers, sessions middleware.SessionStore, opts Options) *mux.Router {
	r := mux.NewRouter()

	if opts.Logger != nil {
		r.Use(middleware.LoggingMiddleware(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// ============================================================
	// MOCK API
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/available-times", h.GetAvailableTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-times/check", h.CheckTimeAvailability.Handle).Methods(http.MethodGet)

	// Изменяющие запросы ограничиваются по частоте
	limited := api.PathPrefix("").Subrouter()
	if opts.RateLimiter != nil {
		limited.Use(opts.RateLimiter.Middleware())
	}
	limited.HandleFunc("/bookings", h.SubmitBooking.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/sessions", h.FormSession.Create).Methods(http.MethodPost)
	limited.HandleFunc("/sessions/{sessionId}/events", h.FormSession.Dispatch).Methods(http.MethodPost)

	api.HandleFunc("/sessions/{sessionId}", h.FormSession.Get).Methods(http.MethodGet)

	// Подтверждение ищется в сессии посетителя; запрос без cookie открывает сессию
	withSessionAPI := api.PathPrefix("").Subrouter()
	if opts.RateLimiter != nil {
		withSessionAPI.Use(opts.RateLimiter.Middleware())
	}
	withSessionAPI.Use(middleware.SessionMiddleware(sessions, opts.SecureCookies))
	withSessionAPI.HandleFunc("/confirmations/{confirmationNumber}", h.GetConfirmation.Handle).Methods(http.MethodGet)

	// ============================================================
	// HTML PAGES
	// ============================================================

	r.HandleFunc(domain.HomePath, h.Pages.Home).Methods(http.MethodGet)
	r.HandleFunc(domain.NotFoundPath, h.Pages.NotFound).Methods(http.MethodGet)

	site := r.PathPrefix("").Subrouter()
	if opts.RateLimiter != nil {
		site.Use(opts.RateLimiter.Middleware())
	}
	site.Use(middleware.SessionMiddleware(sessions, opts.SecureCookies))
	site.HandleFunc(domain.BookingsPath, h.Pages.BookingForm).Methods(http.MethodGet)
	site.HandleFunc(domain.BookingsPath, h.Pages.BookingSubmit).Methods(http.MethodPost)
	site.HandleFunc(domain.ConfirmationPathPrefix+"{confirmationNumber}", h.Pages.Confirmation).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(h.Pages.NotFound)

	return r
}
