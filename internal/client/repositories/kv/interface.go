// Package kv stores raw session entries: opaque byte values addressed by a
// string key.
package kv

import "context"

// Repository is the raw key/value surface below the session store.
//
// Get returns (nil, nil) for a missing key. Delete of a missing key is
// not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
