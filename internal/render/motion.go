// Package render holds the presentation side of the game that does not
// depend on a particular engine: move interpolation, the scene description
// both frontends draw, the backend interfaces, and a View that ties them to
// a Director.
package render

import (
	"slices"

	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/grid"
	"chosenoffset.com/scavenger/turn"
)

type track struct {
	from, to grid.Cell
	elapsed  float64
	duration float64
}

// Motion interpolates entities between cells after each move event and
// reports when a transition finishes. The scheduler's cells are already
// final; Motion only decides where to draw.
type Motion struct {
	tracks map[entity.ID]*track

	// OnSettled is called once per finished transition.
	OnSettled func(id entity.ID)
}

// NewMotion creates an idle tracker.
func NewMotion() *Motion {
	return &Motion{tracks: make(map[entity.ID]*track)}
}

// Start begins a transition. A zero duration settles at once.
func (m *Motion) Start(ev turn.MoveEvent) {
	if ev.Duration <= 0 {
		delete(m.tracks, ev.ID)
		m.settled(ev.ID)
		return
	}
	m.tracks[ev.ID] = &track{from: ev.From, to: ev.To, duration: ev.Duration}
}

// Update advances every transition by dt seconds.
func (m *Motion) Update(dt float64) {
	var done []entity.ID
	for id, t := range m.tracks {
		t.elapsed += dt
		if t.elapsed >= t.duration {
			done = append(done, id)
		}
	}
	slices.Sort(done)
	for _, id := range done {
		delete(m.tracks, id)
		m.settled(id)
	}
}

// Position returns where to draw an entity standing on cell, in cell units.
func (m *Motion) Position(id entity.ID, cell grid.Cell) (x, y float64) {
	t, ok := m.tracks[id]
	if !ok {
		return float64(cell.X), float64(cell.Y)
	}
	f := t.elapsed / t.duration
	x = float64(t.from.X) + float64(t.to.X-t.from.X)*f
	y = float64(t.from.Y) + float64(t.to.Y-t.from.Y)*f
	return x, y
}

// Moving reports whether an entity is mid-transition.
func (m *Motion) Moving(id entity.ID) bool {
	_, ok := m.tracks[id]
	return ok
}

// Busy reports whether anything is mid-transition.
func (m *Motion) Busy() bool {
	return len(m.tracks) > 0
}

// Forget drops an entity's transition without settling it.
func (m *Motion) Forget(id entity.ID) {
	delete(m.tracks, id)
}

// Clear drops every transition, for a new level.
func (m *Motion) Clear() {
	clear(m.tracks)
}

func (m *Motion) settled(id entity.ID) {
	if m.OnSettled != nil {
		m.OnSettled(id)
	}
}
