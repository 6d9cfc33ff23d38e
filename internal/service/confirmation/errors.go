package confirmation

import "errors"

var (
	// ErrNotFound возвращается при любой неудаче поиска подтверждения
	ErrNotFound = errors.New("confirmation: booking not found")

	// ErrInternal возвращается, когда запись не удалось сохранить
	ErrInternal = errors.New("confirmation: internal error")
)
