package store

import (
	"context"
	"encoding/json"
)

// Envelope is the unit actually persisted for a collection: the complete
// snapshot of its records plus the last-write time in epoch milliseconds.
// A collection is always stored whole, never as a delta.
type Envelope[T any] struct {
	Data      []T   `json:"data"`
	Timestamp int64 `json:"timestamp"`
}

// Read returns the collection stored under name. A missing key, a medium
// failure, or a corrupt envelope all degrade to an empty slice; the
// failure is logged, never propagated. Callers can treat the result as
// the current truth even when the medium is unhealthy.
func Read[T any](ctx context.Context, s *Store, name string) []T {
	items, _ := ReadEnvelope[T](ctx, s, name)
	return items
}

// ReadEnvelope is Read plus the envelope's last-write timestamp (epoch
// milliseconds, zero when the collection is absent or unreadable).
func ReadEnvelope[T any](ctx context.Context, s *Store, name string) ([]T, int64) {
	raw, err := s.medium.Get(ctx, s.Key(name))
	if err != nil {
		s.logger.Warn(ctx, "collection read failed, degrading to empty", "name", name, "err", err)
		return []T{}, 0
	}
	if raw == nil {
		return []T{}, 0
	}

	var env Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		s.logger.Warn(ctx, "collection envelope corrupt, degrading to empty", "name", name, "err", err)
		return []T{}, 0
	}
	if env.Data == nil {
		env.Data = []T{}
	}
	return env.Data, env.Timestamp
}

// Write persists items as the complete new snapshot of the collection.
// Returns false when the write was dropped (quota, medium failure); the
// caller's in-memory view then goes stale until the next successful
// write, which is the accepted degradation mode of this layer.
func Write[T any](ctx context.Context, s *Store, name string, items []T) bool {
	if items == nil {
		items = []T{}
	}
	env := Envelope[T]{Data: items, Timestamp: s.now().UnixMilli()}

	raw, err := json.Marshal(env)
	if err != nil {
		s.logger.Error(ctx, "collection envelope marshal failed, write dropped", "name", name, "err", err)
		return false
	}
	if err := s.medium.Set(ctx, s.Key(name), raw); err != nil {
		s.logger.Warn(ctx, "collection write dropped", "name", name, "err", err)
		return false
	}
	return true
}

// GetValue reads a single JSON value stored outside the collection
// envelopes, such as the session record. Absent or unreadable values
// report ok=false.
func GetValue[T any](ctx context.Context, s *Store, name string) (T, bool) {
	var v T
	raw, err := s.medium.Get(ctx, s.Key(name))
	if err != nil {
		s.logger.Warn(ctx, "value read failed", "name", name, "err", err)
		return v, false
	}
	if raw == nil {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.Warn(ctx, "value corrupt", "name", name, "err", err)
		return v, false
	}
	return v, true
}

// SetValue stores a single JSON value under a reserved key. Best-effort,
// like every write at this layer.
func SetValue[T any](ctx context.Context, s *Store, name string, v T) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(ctx, "value marshal failed, write dropped", "name", name, "err", err)
		return false
	}
	if err := s.medium.Set(ctx, s.Key(name), raw); err != nil {
		s.logger.Warn(ctx, "value write dropped", "name", name, "err", err)
		return false
	}
	return true
}

// DeleteValue removes a single reserved key. Idempotent.
func (s *Store) DeleteValue(ctx context.Context, name string) {
	if err := s.medium.Delete(ctx, s.Key(name)); err != nil {
		s.logger.Warn(ctx, "value delete dropped", "name", name, "err", err)
	}
}
