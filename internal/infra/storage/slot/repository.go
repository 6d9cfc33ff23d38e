package slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// Repository хранит единственную (последнюю) запись бронирования.
// Каждая запись перезаписывает предыдущую в пределах одной области (scope).
// Пустая область соответствует ключу без суффикса.
type Repository struct {
	backend Backend
	key     string
}

// NewRepository создает репозиторий поверх бэкенда. Пустой key заменяется на DefaultKey.
func NewRepository(backend Backend, key string) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{backend: backend, key: key}
}

// Key возвращает ключ хранилища для области
func (r *Repository) Key(scope string) string {
	if scope == "" {
		return r.key
	}
	return r.key + ":" + scope
}

// Save сериализует запись в JSON и перезаписывает слот
func (r *Repository) Save(ctx context.Context, scope string, booking *domain.BookingRecord) error {
	data, err := json.Marshal(fromDomain(booking))
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrEncodeRecord, err)
	}

	if err := r.backend.Set(ctx, r.Key(scope), data); err != nil {
		return fmt.Errorf("%w: Save - set %s: %v", ErrBackend, r.Key(scope), err)
	}

	return nil
}

// Load читает запись из слота
func (r *Repository) Load(ctx context.Context, scope string) (*domain.BookingRecord, error) {
	data, err := r.backend.Get(ctx, r.Key(scope))
	if errors.Is(err, errKeyNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get %s: %v", ErrBackend, r.Key(scope), err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal: %v", ErrCorruptRecord, err)
	}

	return rec.toDomain(), nil
}

// SaveRaw записывает произвольные байты в слот (используется при восстановлении и в тестах)
func (r *Repository) SaveRaw(ctx context.Context, scope string, data []byte) error {
	if err := r.backend.Set(ctx, r.Key(scope), data); err != nil {
		return fmt.Errorf("%w: SaveRaw - set %s: %v", ErrBackend, r.Key(scope), err)
	}
	return nil
}

// Clear удаляет запись из слота
func (r *Repository) Clear(ctx context.Context, scope string) error {
	if err := r.backend.Delete(ctx, r.Key(scope)); err != nil {
		return fmt.Errorf("%w: Clear - delete %s: %v", ErrBackend, r.Key(scope), err)
	}
	return nil
}
