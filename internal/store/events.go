package store

// Event describes one mutation of a collection. Exactly one of Record and
// DeletedID is meaningful: Record carries the created/updated record (or
// the full slice for a bulk replace), DeletedID marks a removal.
// Consumers re-read the collection themselves; the store pushes no diffs.
type Event struct {
	Collection string
	Record     any
	DeletedID  string
}

// Subscribe registers fn to run for every mutation of the named
// collection. Callbacks run synchronously, before the mutating call
// returns. The returned function unsubscribes; calling it more than once
// is harmless.
func (s *Store) Subscribe(name string, fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.subs[name]
	if !ok {
		set = make(map[int]func(Event))
		s.subs[name] = set
	}
	id := s.nextSub
	s.nextSub++
	set[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[name], id)
	}
}

func (s *Store) publish(ev Event) {
	s.mu.Lock()
	fns := make([]func(Event), 0, len(s.subs[ev.Collection]))
	for _, fn := range s.subs[ev.Collection] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may re-read the
	// collection or unsubscribe itself without deadlocking.
	for _, fn := range fns {
		fn(ev)
	}
}
