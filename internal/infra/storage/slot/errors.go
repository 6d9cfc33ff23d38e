package slot

import "errors"

var (
	// ErrRecordNotFound возвращается, когда в слоте ничего не сохранено
	ErrRecordNotFound = errors.New("slot.repository: record not found")

	// ErrCorruptRecord возвращается, когда сохранённые данные не удалось разобрать
	ErrCorruptRecord = errors.New("slot.repository: corrupt record")

	// ErrEncodeRecord возвращается при ошибке сериализации записи
	ErrEncodeRecord = errors.New("slot.repository: failed to encode record")

	// ErrBackend возвращается при ошибке хранилища (Redis недоступен и т.п.)
	ErrBackend = errors.New("slot.repository: backend error")

	// errKeyNotFound сигнал бэкенда об отсутствии ключа
	errKeyNotFound = errors.New("slot.backend: key not found")
)
