package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrInvalidEvent возвращается для некорректного события формы
	ErrInvalidEvent = errors.New("sessions: invalid event")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("sessions: internal error")
)

// SubmitErrorMessage публичное сообщение о неудачной отправке
const SubmitErrorMessage = "Failed to submit booking"
