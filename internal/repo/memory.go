package repo

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{m: make(map[string]string)}
}

func (r *MemoryRepo) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.m[key]
	if !ok {
		return "", ErrorNotFound
	}
	return v, nil
}

func (r *MemoryRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[key] = value
	return nil
}

func (r *MemoryRepo) Close() error {
	return nil
}
