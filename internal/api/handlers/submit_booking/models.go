package submit_booking

import (
	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	submitBooking "github.com/m04kA/LittleLemon-Booking/internal/usecase/submit_booking"
)

// CreatedAtFormat RFC3339 с миллисекундами в UTC
const CreatedAtFormat = "2006-01-02T15:04:05.000Z"

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   int    `json:"guests"`
	Occasion string `json:"occasion"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		Date:     r.Date,
		Time:     r.Time,
		Guests:   r.Guests,
		Occasion: r.Occasion,
	}
}

// BookingRecordResponse HTTP response model
type BookingRecordResponse struct {
	BookingID          string `json:"bookingId"`
	ConfirmationNumber string `json:"confirmationNumber"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	Guests             int    `json:"guests"`
	Occasion           string `json:"occasion"`
	Status             string `json:"status"`
	CreatedAt          string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingRecordResponse {
	return FromDomain(resp.ToDomain())
}

// FromDomain конвертирует доменную запись в HTTP response
func FromDomain(b *domain.BookingRecord) *BookingRecordResponse {
	return &BookingRecordResponse{
		BookingID:          b.BookingID,
		ConfirmationNumber: b.ConfirmationNumber,
		Date:               b.Date,
		Time:               b.Time,
		Guests:             b.Guests,
		Occasion:           b.Occasion,
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt.UTC().Format(CreatedAtFormat),
	}
}
