package core

import (
	"context"
	"errors"
)

var (
	// ErrKeyNotFound is returned by KVStore.Load when nothing was ever saved under a key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrClosed is returned by every KVStore call made after Close.
	ErrClosed = errors.New("kv store closed")
)

// KVStore is a durable slot store: one opaque value per key.
// Save overwrites whatever was previously stored under the key.
type KVStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
