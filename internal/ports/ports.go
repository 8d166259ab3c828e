package ports

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a KeyValueStore when the key has never been
// written.
var ErrNotFound = errors.New("key not found")

// KeyValueStore is the local persistence boundary. Values are opaque bytes;
// callers decide the encoding.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Notifier is the transient user-facing message surface (toasts).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
