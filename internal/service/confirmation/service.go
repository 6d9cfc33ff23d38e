package confirmation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	"github.com/m04kA/LittleLemon-Booking/internal/infra/storage/slot"
)

// Service сервис сохранения и поиска подтверждённого бронирования
type Service struct {
	repo   SlotRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса подтверждений
func NewService(repo SlotRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Store сохраняет запись, перезаписывая предыдущую в области scope
func (s *Service) Store(ctx context.Context, scope string, booking *domain.BookingRecord) error {
	if err := s.repo.Save(ctx, scope, booking); err != nil {
		s.logger.Error("Store: failed to save booking %s: %v", booking.BookingID, err)
		return fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	s.logger.Info("Store: booking %s saved, confirmation=%s", booking.BookingID, booking.ConfirmationNumber)
	return nil
}

// Retrieve возвращает сохранённую запись, если её номер подтверждения совпадает.
// Доступна только последняя запись.
func (s *Service) Retrieve(ctx context.Context, scope, confirmationNumber string) (*domain.BookingRecord, error) {
	// 1. Пустой номер не ищем
	if confirmationNumber == "" {
		s.logger.Warn("Retrieve: empty confirmation number")
		return nil, ErrNotFound
	}

	// 2. Читаем слот
	booking, err := s.repo.Load(ctx, scope)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrRecordNotFound):
			s.logger.Warn("Retrieve: no stored booking for confirmation=%s", confirmationNumber)
		case errors.Is(err, slot.ErrCorruptRecord):
			s.logger.Error("Retrieve: stored booking is corrupt: %v", err)
		default:
			s.logger.Error("Retrieve: failed to load booking: %v", err)
		}
		return nil, ErrNotFound
	}

	// 3. Сверяем номер
	if booking.ConfirmationNumber != confirmationNumber {
		s.logger.Warn("Retrieve: confirmation mismatch: requested=%s, stored=%s",
			confirmationNumber, booking.ConfirmationNumber)
		return nil, ErrNotFound
	}

	return booking, nil
}
