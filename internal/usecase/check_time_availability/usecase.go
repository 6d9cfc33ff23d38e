package check_time_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// UseCase use case для проверки доступности одного слота (mock API)
type UseCase struct {
	latency Latency
	random  Random
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	latency Latency,
	random Random,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		latency: latency,
		random:  random,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute проверяет слот по базовой таблице дня.
// Результат GetAvailableTimes не переиспользуется: жребий бросается заново.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.logger.Info("CheckTimeAvailability: date=%q, time=%q", req.Date, req.Time)

	// 1. Имитируем сетевую задержку
	uc.latency.Wait(domain.SlotCheckLatency)

	// 2. Берём базовую таблицу для типа дня
	kind := domain.ClassifyDate(req.Date)
	base, err := domain.BaseTimeTable(kind)
	if err != nil {
		uc.logger.Error("CheckTimeAvailability: failed to build %s table: %v", kind, err)
		return nil, fmt.Errorf("%w: failed to build time table: %v", ErrInternal, err)
	}

	// 3. Ищем слот по точному совпадению ключа
	slot, ok := domain.FindSlot(base, req.Time)
	if !ok {
		uc.logger.Warn("CheckTimeAvailability: time=%q not in %s table", req.Time, kind)
		return nil, ErrTimeSlotNotFound
	}

	// 4. Тот же жребий, что и в GetAvailableTimes
	available := slot.Available && uc.random.Float64() > domain.UnavailabilityThreshold

	if uc.metrics != nil {
		uc.metrics.ObserveSlotCheck(available)
	}

	uc.logger.Info("CheckTimeAvailability: date=%q, time=%q, available=%t", req.Date, req.Time, available)

	return &Response{
		Date:      req.Date,
		Time:      req.Time,
		Available: available,
	}, nil
}
