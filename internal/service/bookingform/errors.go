package bookingform

import "errors"

var (
	// ErrUnknownField возвращается для события с неизвестным полем формы
	ErrUnknownField = errors.New("bookingform: unknown field")

	// ErrUnknownEvent возвращается для неподдерживаемого события
	ErrUnknownEvent = errors.New("bookingform: unknown event")

	// ErrValidatorSetup возвращается, если не удалось зарегистрировать правила валидации
	ErrValidatorSetup = errors.New("bookingform: validator setup failed")
)
