package entity

// Table owns every entity of a level. IDs are indices into the table and
// are never reused, so a handle held across a removal stays safe to look up.
type Table struct {
	entities []*Entity
	live     int
}

func NewTable() *Table {
	return &Table{}
}

// Add stores e, assigns its ID and returns it.
func (t *Table) Add(e *Entity) ID {
	e.ID = ID(len(t.entities))
	e.Alive = true
	t.entities = append(t.entities, e)
	t.live++
	return e.ID
}

// Get returns the entity for id, or nil if id was never issued.
func (t *Table) Get(id ID) *Entity {
	if id < 0 || int(id) >= len(t.entities) {
		return nil
	}
	return t.entities[id]
}

// Lookup returns the entity for id only if it is still alive.
func (t *Table) Lookup(id ID) (*Entity, bool) {
	e := t.Get(id)
	if e == nil || !e.Alive {
		return nil, false
	}
	return e, true
}

// Remove marks the entity dead. It reports false if it was already gone.
func (t *Table) Remove(id ID) bool {
	e, ok := t.Lookup(id)
	if !ok {
		return false
	}
	e.Alive = false
	e.Moving = false
	t.live--
	return true
}

// All returns live entities in creation order.
func (t *Table) All() []*Entity {
	out := make([]*Entity, 0, t.live)
	for _, e := range t.entities {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

// ByRole returns live entities of a role in creation order.
func (t *Table) ByRole(r Role) []*Entity {
	var out []*Entity
	for _, e := range t.entities {
		if e.Alive && e.Role == r {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of live entities.
func (t *Table) Len() int {
	return t.live
}
