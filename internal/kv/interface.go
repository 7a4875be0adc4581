package kv

import (
	"context"
)

type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// UpdateFunc receives the current value (nil when absent) and returns the
// value to store. Returning an error aborts the update and leaves the key as is.
type UpdateFunc func(old []byte) ([]byte, error)

// Updater is implemented by backends able to run fn and the following write
// without another writer slipping in between.
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
