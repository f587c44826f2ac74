package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates no value is stored under the requested key.
	ErrNotFound = errors.New("key not found")
)

// Store is the durable key-value storage both state containers persist into.
// Values are opaque serialized blobs; the stores own their own encoding.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
