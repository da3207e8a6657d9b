// Package kvstore defines the persisted key-value store the engine uses
// for user context and conversation memory snapshots.
//
// Values are opaque JSON blobs. The engine writes whole snapshots and
// treats the store as a cache of state it can re-derive, so implementations
// do not need transactional guarantees. Last write wins.
package kvstore

import (
	"context"
	"errors"
)

// Sentinel errors for key-value store operations.
var (
	// ErrKeyNotFound is returned when a key is absent from the store.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidConfig indicates invalid store configuration.
	ErrInvalidConfig = errors.New("invalid kvstore configuration")
)

// Store is a minimal key-value store of opaque JSON blobs.
//
// Implementations:
//   - MemoryStore: in-process map (tests, ephemeral deployments)
//   - FileStore: one JSON file per key under a directory
//   - RedisStore: Redis-backed store
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the store.
	Close() error
}
