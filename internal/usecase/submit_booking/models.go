package submit_booking

import (
	"time"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// Request модель запроса на бронирование столика
type Request struct {
	Date     string // Дата бронирования ("2024-01-15")
	Time     string // Время ("19:00")
	Guests   int    // Количество гостей
	Occasion string // Повод (опционально)
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	BookingID          string // "BK" + unix-миллисекунды
	ConfirmationNumber string // 8 символов [A-Z0-9]
	Date               string
	Time               string
	Guests             int
	Occasion           string
	Status             string
	CreatedAt          time.Time
}

// ToDomain конвертирует ответ в доменную запись для хранения
func (r *Response) ToDomain() *domain.BookingRecord {
	return &domain.BookingRecord{
		BookingRequest: domain.BookingRequest{
			Date:     r.Date,
			Time:     r.Time,
			Guests:   r.Guests,
			Occasion: r.Occasion,
		},
		BookingID:          r.BookingID,
		ConfirmationNumber: r.ConfirmationNumber,
		Status:             domain.BookingStatus(r.Status),
		CreatedAt:          r.CreatedAt,
	}
}
