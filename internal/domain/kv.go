package domain

import "context"

// KVStore is durable key-value storage scoped to this installation. Reads of
// missing keys return ErrNotFound. There are no transactions and no TTL.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
