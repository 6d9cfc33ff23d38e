package submit_booking

import "errors"

var (
	// ErrMissingRequiredFields возвращается, когда не указаны дата, время или количество гостей (0 считается отсутствием)
	ErrMissingRequiredFields = errors.New("submit_booking: missing required fields")
)
