package store

// Meta carries the fields the store stamps on every record. Domain record
// structs embed it; callers never fill it themselves, Create and Update
// overwrite whatever they supply.
type Meta struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EntityID returns the record's unique id within its collection.
func (m *Meta) EntityID() string { return m.ID }

func (m *Meta) metaRef() *Meta { return m }

// Entity is the constraint every collection element satisfies. It is only
// satisfiable by pointer-to-struct types embedding Meta, which is what
// lets the store reach the stamp fields without reflection.
type Entity interface {
	EntityID() string
	metaRef() *Meta
}
