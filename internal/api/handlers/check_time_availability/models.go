package check_time_availability

import checkTimeAvailability "github.com/m04kA/LittleLemon-Booking/internal/usecase/check_time_availability"

// TimeAvailabilityResponse HTTP response model
type TimeAvailabilityResponse struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkTimeAvailability.Response) *TimeAvailabilityResponse {
	return &TimeAvailabilityResponse{
		Date:      resp.Date,
		Time:      resp.Time,
		Available: resp.Available,
	}
}
