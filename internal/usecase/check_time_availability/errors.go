package check_time_availability

import "errors"

var (
	// ErrTimeSlotNotFound возвращается, когда время не совпадает ни с одним слотом таблицы
	ErrTimeSlotNotFound = errors.New("check_time_availability: time slot not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_time_availability: internal error")
)
