// Package medium defines the backing-medium contract the store persists
// through: a synchronous, string-keyed, binary-valued durable store with
// get/set/delete and key enumeration. Two implementations are provided,
// a sqlite-backed one for durable use and an in-memory one for tests and
// ephemeral runs.
package medium

import "context"

// Medium is the physical key-value substrate underneath the store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites unconditionally and may fail when the medium is full.
//   - Delete is idempotent.
//   - Keys enumerates every physical key currently present.
type Medium interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
	Close() error
}

// BatchDeleter is an optional fast path media can implement to remove a
// set of keys atomically. The store falls back to per-key Delete calls
// when the medium does not implement it.
type BatchDeleter interface {
	DeleteMany(ctx context.Context, keys []string) error
}
