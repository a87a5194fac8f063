// Package store implements the embedded, versioned, typed key-collection
// persistence layer the back office runs on when offline. Every collection
// is persisted as one envelope (full snapshot plus last-write timestamp)
// under one namespaced key of the backing medium; mutations are full
// read-modify-write cycles and fire synchronous change notifications.
//
// The store is deliberately not a database: there is no multi-key
// atomicity, no isolation between concurrent writers sharing a medium,
// and no indexing. Queries are linear scans over collections of at most
// a few thousand records.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magangjo/backoffice/internal/logging"
	"github.com/magangjo/backoffice/internal/medium"
)

// DefaultVersion is the schema-version segment baked into every physical
// key. Bumping it orphans data written under older versions; there is no
// migration between versions.
const DefaultVersion = "v1"

const keyAppPrefix = "backoffice"

// Store is the explicit context object every collection is bound to: the
// backing medium, the logger, the schema version, the clock, and the
// subscriber registry. Construct one per process (or per test) instead of
// sharing module-level state.
type Store struct {
	medium  medium.Medium
	logger  logging.Logger
	version string
	now     func() time.Time

	mu      sync.Mutex
	nextSub int
	subs    map[string]map[int]func(Event)
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithVersion overrides the schema-version segment of every key.
func WithVersion(v string) Option {
	return func(s *Store) { s.version = v }
}

// WithClock overrides the time source. Tests use it to force expiry and
// to make stamps deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a Store over the given medium.
func New(m medium.Medium, logger logging.Logger, opts ...Option) *Store {
	s := &Store{
		medium:  m,
		logger:  logger.With("component", "store"),
		version: DefaultVersion,
		now:     time.Now,
		subs:    make(map[string]map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateID returns a fresh globally-unique identifier.
func (s *Store) GenerateID() string {
	return uuid.NewString()
}

// Key maps a logical collection name to its physical medium key. The
// mapping is deterministic within a schema version, so the same name
// always reads and writes the same key.
func (s *Store) Key(name string) string {
	return keyAppPrefix + ":" + s.version + ":" + name
}

func (s *Store) keyPrefix() string {
	return keyAppPrefix + ":" + s.version + ":"
}

// Timestamps are stored as fixed-width UTC strings so lexicographic
// comparison matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000Z"

func (s *Store) stampNow() string {
	return s.now().UTC().Format(timeLayout)
}

// Now exposes the store's clock.
func (s *Store) Now() time.Time {
	return s.now()
}

// NewMeta returns a freshly stamped Meta. Bulk routines that assemble
// records outside Create (e.g. the credential bootstrap) use it so that
// stamping still comes from the store, never from caller input.
func (s *Store) NewMeta() Meta {
	now := s.stampNow()
	return Meta{ID: s.GenerateID(), CreatedAt: now, UpdatedAt: now}
}

// ClearNamespace removes every physical key under the current schema
// version. Keys written under other versions, and keys outside the store
// entirely, are untouched. Used only for full resets.
func (s *Store) ClearNamespace(ctx context.Context) {
	keys, err := s.medium.Keys(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to enumerate medium keys", "err", err)
		return
	}

	prefix := s.keyPrefix()
	var mine []string
	for _, k := range keys {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			mine = append(mine, k)
		}
	}
	if len(mine) == 0 {
		return
	}

	if bd, ok := s.medium.(medium.BatchDeleter); ok {
		if err := bd.DeleteMany(ctx, mine); err != nil {
			s.logger.Error(ctx, "failed to clear namespace", "err", err)
		}
		return
	}
	for _, k := range mine {
		if err := s.medium.Delete(ctx, k); err != nil {
			s.logger.Error(ctx, "failed to delete key", "key", k, "err", err)
		}
	}
}
