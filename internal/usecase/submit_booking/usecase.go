package submit_booking

import (
	"context"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	"github.com/m04kA/LittleLemon-Booking/pkg/metrics"
)

// UseCase use case для отправки бронирования (mock API).
// Не читает и не изменяет ранее созданные бронирования.
type UseCase struct {
	latency      Latency
	random       Random
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	latency Latency,
	random Random,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		latency:      latency,
		random:       random,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case отправки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitBooking: date=%q, time=%q, guests=%d, occasion=%q",
		req.Date, req.Time, req.Guests, req.Occasion)

	// 1. Имитируем сетевую задержку
	uc.latency.Wait(domain.SubmitLatency)

	// 2. Проверяем обязательные поля
	booking := domain.BookingRequest{
		Date:     req.Date,
		Time:     req.Time,
		Guests:   req.Guests,
		Occasion: req.Occasion,
	}
	if !booking.HasRequiredFields() {
		uc.logger.Warn("SubmitBooking: missing required fields: date=%q, time=%q, guests=%d",
			req.Date, req.Time, req.Guests)
		uc.observe(metrics.OutcomeRejected)
		return nil, ErrMissingRequiredFields
	}

	// 3. Генерируем идентификаторы
	now := uc.timeProvider.Now()
	resp := &Response{
		BookingID:          generateBookingID(now),
		ConfirmationNumber: generateConfirmationNumber(uc.random),
		Date:               req.Date,
		Time:               req.Time,
		Guests:             req.Guests,
		Occasion:           req.Occasion,
		Status:             string(domain.StatusConfirmed),
		CreatedAt:          now.UTC(),
	}

	uc.observe(metrics.OutcomeConfirmed)
	uc.logger.Info("SubmitBooking: booking %s confirmed, confirmation=%s", resp.BookingID, resp.ConfirmationNumber)

	return resp, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveSubmission(outcome)
	}
}
