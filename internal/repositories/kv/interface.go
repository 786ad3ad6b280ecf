package kv

import (
	"context"
)

// Repository describes the key-value operations of one physical store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// DeleteKeys removes all keys or none of them.
	DeleteKeys(ctx context.Context, keys ...string) error
}
