package form_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LittleLemon-Booking/internal/api/handlers"
	"github.com/m04kA/LittleLemon-Booking/internal/api/middleware"
	"github.com/m04kA/LittleLemon-Booking/internal/service/sessions"
)

const (
	msgSessionNotFound    = "Session not found"
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidEvent       = "Invalid form event"
)

type Handler struct {
	manager       SessionManager
	secureCookies bool
	logger        Logger
}

func NewHandler(manager SessionManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// WithSecureCookies выставляет флаг Secure у cookie сессии
func (h *Handler) WithSecureCookies(secure bool) *Handler {
	h.secureCookies = secure
	return h
}

// Create POST /api/v1/sessions
// Cookie сессии позволяет открыть страницу подтверждения по адресу из Redirect
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create()
	middleware.SetSessionCookie(w, s.ID(), h.secureCookies)

	h.logger.Info("POST /sessions - Session created: id=%s", s.ID())
	handlers.RespondData(w, http.StatusCreated, &CreateSessionResponse{SessionID: s.ID()})
}

// Get GET /api/v1/sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]

	s, err := h.manager.Get(id)
	if err != nil {
		h.respondSessionError(w, id, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, FromView(s.View()))
}

// Dispatch POST /api/v1/sessions/{sessionId}/events
// Body: {type: change|blur|submit, field, value, wait}
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]

	s, err := h.manager.Get(id)
	if err != nil {
		h.respondSessionError(w, id, err)
		return
	}

	var req EventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := req.ToEvent()
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/events - Invalid event: session=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidEvent, err.Error())
		return
	}

	view, err := s.Dispatch(r.Context(), event)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidEvent):
			h.logger.Warn("POST /sessions/{id}/events - Rejected event: session=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidEvent, err.Error())
		default:
			h.logger.Error("POST /sessions/{id}/events - Failed to apply event: session=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if req.Wait {
		s.WaitIdle()
		view = s.View()
	}

	h.logger.Info("POST /sessions/{id}/events - Event applied: session=%s, type=%s, phase=%s", id, req.Type, view.Phase)
	handlers.RespondData(w, http.StatusOK, FromView(view))
}

func (h *Handler) respondSessionError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, sessions.ErrSessionNotFound) {
		h.logger.Warn("sessions/{id} - Session not found: id=%s", id)
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}
	h.logger.Error("sessions/{id} - Failed to get session: id=%s, error=%v", id, err)
	handlers.RespondInternalError(w)
}
