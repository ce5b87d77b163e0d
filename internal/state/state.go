package state

import (
	"context"
	"sync"
)

// Storage is the key-value contract the cart persists through.
// Get returns nil, nil when the key has never been written.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type memoryStorage struct {
	mutex  sync.RWMutex
	values map[string][]byte
}

// NewMemoryStorage keeps values in process memory; contents are lost on restart
func NewMemoryStorage() Storage {
	return &memoryStorage{
		values: make(map[string][]byte),
	}
}

func (s *memoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (s *memoryStorage) Set(_ context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}
