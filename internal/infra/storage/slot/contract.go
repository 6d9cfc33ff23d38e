package slot

import "context"

// Backend хранилище сырых значений по ключу.
// Get возвращает errKeyNotFound, если ключа нет.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
