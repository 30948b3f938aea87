package grid

// Occupancy maps cells to the handle of the entity standing there. It is
// separate from the free-cell pool: the pool governs initial placement
// only, occupancy governs collision for the whole level.
type Occupancy struct {
	cells map[Cell]int
}

func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[Cell]int)}
}

// Mark records c as held by handle h.
func (o *Occupancy) Mark(c Cell, h int) {
	o.cells[c] = h
}

// Clear frees c.
func (o *Occupancy) Clear(c Cell) {
	delete(o.cells, c)
}

// IsOccupied reports whether c is held.
func (o *Occupancy) IsOccupied(c Cell) bool {
	_, ok := o.cells[c]
	return ok
}

// At returns the handle holding c.
func (o *Occupancy) At(c Cell) (int, bool) {
	h, ok := o.cells[c]
	return h, ok
}

// Move vacates from and occupies to in one step, keeping the handle.
func (o *Occupancy) Move(from, to Cell) {
	h, ok := o.cells[from]
	if !ok {
		return
	}
	delete(o.cells, from)
	o.cells[to] = h
}

// Len returns the number of occupied cells.
func (o *Occupancy) Len() int {
	return len(o.cells)
}
