package form_session

import "github.com/m04kA/LittleLemon-Booking/internal/service/sessions"

type SessionManager interface {
	Create() *sessions.Session
	Get(id string) (*sessions.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
