package get_available_times

import "github.com/m04kA/LittleLemon-Booking/internal/domain"

// Request модель запроса на получение доступного времени
type Request struct {
	Date string // Дата в формате YYYY-MM-DD; нераспознанная дата обслуживается как будний день
}

// Response модель ответа со списками доступных и занятых слотов
type Response struct {
	Date             string            // Дата, переданная в запросе (без изменений)
	DayKind          domain.DayKind    // Какая таблица слотов применена
	AvailableTimes   []domain.TimeSlot // Только доступные слоты, по возрастанию
	UnavailableTimes []domain.TimeSlot // Только занятые слоты, по возрастанию
}

// ToDomain конвертирует ответ в доменную модель
func (r *Response) ToDomain() *domain.AvailabilityResult {
	return &domain.AvailabilityResult{
		Date:             r.Date,
		DayKind:          r.DayKind,
		AvailableTimes:   r.AvailableTimes,
		UnavailableTimes: r.UnavailableTimes,
	}
}
