package store

import (
	"context"
	"reflect"
	"strings"
)

// Collection is the typed CRUD/query surface produced by the factory for
// one logical collection name. Instances are cheap: they hold only the
// name and the store they are bound to, so two collections created with
// the same name share the same physical key and observe each other's
// writes.
type Collection[T Entity] struct {
	store *Store
	name  string
}

// NewCollection binds a typed collection to name on s. This is the
// collection factory; it is instantiated once per entity kind.
func NewCollection[T Entity](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// Name returns the logical collection name.
func (c *Collection[T]) Name() string { return c.name }

// GetAll returns the full collection snapshot.
func (c *Collection[T]) GetAll(ctx context.Context) []T {
	return Read[T](ctx, c.store, c.name)
}

// GetByID returns the record with the given id, or ok=false.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, bool) {
	return Find[T](ctx, c.store, c.name, id)
}

// GetOneByField returns the first record whose field equals value. The
// field is matched against json tags first, then Go field names, walking
// embedded structs. Linear scan, first match wins.
func (c *Collection[T]) GetOneByField(ctx context.Context, field string, value any) (T, bool) {
	for _, it := range c.GetAll(ctx) {
		fv, ok := fieldByName(reflect.ValueOf(it), field)
		if ok && reflect.DeepEqual(fv.Interface(), value) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Count returns the number of records in the collection.
func (c *Collection[T]) Count(ctx context.Context) int {
	return len(c.GetAll(ctx))
}

// Create stamps and prepends item. See store.Create.
func (c *Collection[T]) Create(ctx context.Context, item T) T {
	return Create(ctx, c.store, c.name, item)
}

// Update applies the mutator to the record with the given id. See
// store.Update.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(T)) (T, bool) {
	return Update(ctx, c.store, c.name, id, apply)
}

// Delete removes the record with the given id and reports whether
// anything was removed.
func (c *Collection[T]) Delete(ctx context.Context, id string) bool {
	return Remove[T](ctx, c.store, c.name, id)
}

// Query returns every record matching pred. In-memory filter over the
// full snapshot; there is no indexing.
func (c *Collection[T]) Query(ctx context.Context, pred func(T) bool) []T {
	items := c.GetAll(ctx)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// SetAll replaces the entire collection. Used for reseeding and bulk
// imports; per-item stamping is deliberately bypassed, the caller owns
// the records' meta fields. Subscribers get one event carrying the whole
// new snapshot.
func (c *Collection[T]) SetAll(ctx context.Context, items []T) bool {
	if !Write(ctx, c.store, c.name, items) {
		return false
	}
	c.store.publish(Event{Collection: c.name, Record: items})
	return true
}

// Subscribe registers fn for this collection's change events.
func (c *Collection[T]) Subscribe(fn func(Event)) func() {
	return c.store.Subscribe(c.name, fn)
}

// fieldByName resolves a struct field by json tag or Go name, descending
// into embedded structs the way encoding/json would.
func fieldByName(v reflect.Value, field string) (reflect.Value, bool) {
	v = reflect.Indirect(v)
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if fv, ok := fieldByName(v.Field(i), field); ok {
				return fv, true
			}
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == field || f.Name == field {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}
