package repo

import (
	"context"
	"errors"
)

var (
	ErrorNotFound = errors.New("not found")
)

// KeyValueRepository определяет интерфейс долговременного хранилища: один ключ - одно значение
type KeyValueRepository interface {
	// Get returns ErrorNotFound when nothing was stored under key.
	Get(ctx context.Context, key string) (string, error)
	// Set fully overwrites any previous value.
	Set(ctx context.Context, key, value string) error
	Close() error
}
