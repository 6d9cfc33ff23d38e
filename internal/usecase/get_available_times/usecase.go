package get_available_times

import (
	"context"
	"fmt"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// UseCase use case для получения доступного времени на дату (mock API)
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

// Execute выполняет use case получения доступного времени.
// Результат не кэшируется: повторный запрос на ту же дату может дать другой набор слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// Отменённый запрос не начинаем; начатый отработает до конца
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableTimes: date=%q", req.Date)

	// 1. Имитируем сетевую задержку
	uc.latency.Wait(domain.AvailabilityLatency)

	// 2. Определяем тип дня
	kind := domain.ClassifyDate(req.Date)

	// 3. Строим базовую таблицу слотов
	base, err := domain.BaseTimeTable(kind)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to build %s table: %v", kind, err)
		return nil, fmt.Errorf("%w: failed to build time table: %v", ErrInternal, err)
	}

	// 4. Случайно занимаем часть слотов
	slots := applyRandomUnavailability(base, uc.random)
	available, unavailable := partitionSlots(slots)

	if uc.metrics != nil {
		uc.metrics.ObserveAvailability(string(kind))
	}

	uc.logger.Info("GetAvailableTimes: date=%q kind=%s available=%d unavailable=%d",
		req.Date, kind, len(available), len(unavailable))

	return &Response{
		Date:             req.Date,
		DayKind:          kind,
		AvailableTimes:   available,
		UnavailableTimes: unavailable,
	}, nil
}
