// Package metadata stores small key-value items for the client, such as the
// persisted session token and cache bookkeeping timestamps.
package metadata

import "context"

// Repository is a simple key-value store. Get returns nil (no error) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
