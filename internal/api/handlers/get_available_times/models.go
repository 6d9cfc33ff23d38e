package get_available_times

import (
	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	getAvailableTimes "github.com/m04kA/LittleLemon-Booking/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Date             string     `json:"date"`
	AvailableTimes   []TimeSlot `json:"availableTimes"`
	UnavailableTimes []TimeSlot `json:"unavailableTimes"`
}

// TimeSlot модель слота
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	return &AvailableTimesResponse{
		Date:             resp.Date,
		AvailableTimes:   fromSlots(resp.AvailableTimes),
		UnavailableTimes: fromSlots(resp.UnavailableTimes),
	}
}

func fromSlots(slots []domain.TimeSlot) []TimeSlot {
	out := make([]TimeSlot, len(slots))
	for i, s := range slots {
		out[i] = TimeSlot{Time: s.Time.String(), Available: s.Available}
	}
	return out
}
