package slot

import (
	"time"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// DefaultKey ключ, под которым хранится последняя запись
const DefaultKey = "orderData"

// record JSON-представление сохранённого бронирования
type record struct {
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	Guests             int       `json:"guests"`
	Occasion           string    `json:"occasion"`
	BookingID          string    `json:"bookingId"`
	ConfirmationNumber string    `json:"confirmationNumber"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

func fromDomain(b *domain.BookingRecord) record {
	return record{
		Date:               b.Date,
		Time:               b.Time,
		Guests:             b.Guests,
		Occasion:           b.Occasion,
		BookingID:          b.BookingID,
		ConfirmationNumber: b.ConfirmationNumber,
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
	}
}

func (r record) toDomain() *domain.BookingRecord {
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
