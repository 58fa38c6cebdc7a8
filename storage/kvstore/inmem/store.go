package inmem

import (
	"context"
	"sync"

	"github.com/trezcool/genmo/core"
)

// Store keeps slots in memory. Used by tests and the "memory" backend.
type Store struct {
	mutex  sync.RWMutex
	slots  map[string][]byte
	closed bool
}

var _ core.KVStore = (*Store)(nil)

func New() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.closed {
		return nil, core.ErrClosed
	}
	value, ok := s.slots[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	return append([]byte{}, value...), nil
}

func (s *Store) Save(_ context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return core.ErrClosed
	}
	s.slots[key] = append([]byte{}, value...)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return core.ErrClosed
	}
	delete(s.slots, key)
	return nil
}

// Keys returns the stored keys, in no particular order.
func (s *Store) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make([]string, 0, len(s.slots))
	for k := range s.slots {
		keys = append(keys, k)
	}
	return keys
}

func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.closed = true
	return nil
}
