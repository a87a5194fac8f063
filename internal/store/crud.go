package store

import "context"

// Create stamps item (id generated if the caller left it empty,
// created_at/updated_at always overwritten), prepends it to the
// collection, writes the snapshot back, and notifies subscribers. The
// stamped record is returned even when the write was dropped, in which
// case no notification fires.
func Create[T Entity](ctx context.Context, s *Store, name string, item T) T {
	items := Read[T](ctx, s, name)

	m := item.metaRef()
	if m.ID == "" {
		m.ID = s.GenerateID()
	}
	now := s.stampNow()
	m.CreatedAt = now
	m.UpdatedAt = now

	items = append([]T{item}, items...)
	if Write(ctx, s, name, items) {
		s.publish(Event{Collection: name, Record: item})
	}
	return item
}

// Update locates the record by id and applies the mutator to it. The
// store re-asserts id and created_at afterwards and refreshes updated_at,
// so a careless mutator cannot break the stamping invariants. A missing
// id reports ok=false; that is a normal outcome, not an error.
func Update[T Entity](ctx context.Context, s *Store, name string, id string, apply func(T)) (T, bool) {
	items := Read[T](ctx, s, name)

	for i, it := range items {
		if it.EntityID() != id {
			continue
		}

		m := it.metaRef()
		createdAt := m.CreatedAt
		apply(it)
		m.ID = id
		m.CreatedAt = createdAt
		m.UpdatedAt = s.stampNow()
		items[i] = it

		if Write(ctx, s, name, items) {
			s.publish(Event{Collection: name, Record: it})
		}
		return it, true
	}

	var zero T
	return zero, false
}

// Remove deletes the record with the given id. It writes back only when
// something was actually removed and reports whether it was, which makes
// a second Remove of the same id return false.
func Remove[T Entity](ctx context.Context, s *Store, name string, id string) bool {
	items := Read[T](ctx, s, name)

	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if it.EntityID() != id {
			filtered = append(filtered, it)
		}
	}
	if len(filtered) == len(items) {
		return false
	}
	if !Write(ctx, s, name, filtered) {
		return false
	}
	s.publish(Event{Collection: name, DeletedID: id})
	return true
}

// Find returns the first record whose id matches. Linear scan.
func Find[T Entity](ctx context.Context, s *Store, name string, id string) (T, bool) {
	for _, it := range Read[T](ctx, s, name) {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
