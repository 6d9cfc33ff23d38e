package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	msgInternalError   = "Internal server error"
	msgTooManyRequests = "Too many requests"

	maxBodyBytes = 1 << 20
)

// ErrInvalidBody возвращается, когда тело запроса не удалось разобрать
var ErrInvalidBody = errors.New("handlers: invalid request body")

// Envelope общий формат ответа mock API
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

// RespondJSON записывает payload как JSON без обёртки
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondData записывает успешный ответ {success: true, data}
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, Envelope{Success: true, Data: data})
}

// RespondError записывает ответ {success: false, error, details}
func RespondError(w http.ResponseWriter, status int, message string, details ...string) {
	env := Envelope{Success: false, Error: message}
	if len(details) > 0 {
		env.Details = details[0]
	}
	RespondJSON(w, status, env)
}

func RespondBadRequest(w http.ResponseWriter, message string, details ...string) {
	RespondError(w, http.StatusBadRequest, message, details...)
}

func RespondNotFound(w http.ResponseWriter, message string, details ...string) {
	RespondError(w, http.StatusNotFound, message, details...)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

func RespondTooManyRequests(w http.ResponseWriter) {
	RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
}

// DecodeJSON разбирает тело запроса (не больше 1 МБ)
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}
