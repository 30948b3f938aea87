// Package board holds the authoritative state of one level: which entity
// stands on which cell. It also generates levels (see Generator).
package board

import (
	"errors"
	"fmt"

	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/grid"
)

var (
	// ErrPlacementConflict is returned when a cell is already held.
	ErrPlacementConflict = errors.New("cell already occupied")
	// ErrOutOfBounds is returned for cells outside the floor.
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// Board is one generated level. Blocking entities (player, enemies, walls)
// live in one occupancy layer, walk-over triggers (pickups, exit) in another,
// so a mover can stand on a trigger cell.
type Board struct {
	Columns int
	Rows    int
	Level   int

	entities *entity.Table
	blockers *grid.Occupancy
	triggers *grid.Occupancy

	player entity.ID
}

// New creates an empty board.
func New(columns, rows, level int) *Board {
	return &Board{
		Columns:  columns,
		Rows:     rows,
		Level:    level,
		entities: entity.NewTable(),
		blockers: grid.NewOccupancy(),
		triggers: grid.NewOccupancy(),
		player:   entity.NoID,
	}
}

// InBounds reports whether c is a floor cell.
func (b *Board) InBounds(c grid.Cell) bool {
	return grid.InBounds(b.Columns, b.Rows, c)
}

// Terrain returns the static layer at c, including the outer wall ring.
func (b *Board) Terrain(c grid.Cell) grid.Terrain {
	return grid.TerrainAt(b.Columns, b.Rows, c)
}

// Place adds e to the board at e.Cell.
func (b *Board) Place(e *entity.Entity) (entity.ID, error) {
	if !b.InBounds(e.Cell) {
		return entity.NoID, fmt.Errorf("place %s at %v: %w", e.Kind, e.Cell, ErrOutOfBounds)
	}
	layer := b.layerFor(e)
	if layer.IsOccupied(e.Cell) {
		return entity.NoID, fmt.Errorf("place %s at %v: %w", e.Kind, e.Cell, ErrPlacementConflict)
	}

	id := b.entities.Add(e)
	layer.Mark(e.Cell, int(id))
	if e.Role == entity.RolePlayer {
		b.player = id
	}
	return id, nil
}

// Relocate moves a blocking entity to a free cell atomically: the origin is
// vacated and the destination occupied in one step.
func (b *Board) Relocate(id entity.ID, to grid.Cell) error {
	e, ok := b.entities.Lookup(id)
	if !ok {
		return fmt.Errorf("relocate entity %d: not on board", id)
	}
	if !b.InBounds(to) {
		return fmt.Errorf("relocate %s to %v: %w", e.Kind, to, ErrOutOfBounds)
	}
	layer := b.layerFor(e)
	if layer.IsOccupied(to) {
		return fmt.Errorf("relocate %s to %v: %w", e.Kind, to, ErrPlacementConflict)
	}
	layer.Move(e.Cell, to)
	e.Cell = to
	return nil
}

// Remove takes the entity off the board. Its handle stays resolvable.
func (b *Board) Remove(id entity.ID) bool {
	e, ok := b.entities.Lookup(id)
	if !ok {
		return false
	}
	layer := b.layerFor(e)
	if h, held := layer.At(e.Cell); held && entity.ID(h) == id {
		layer.Clear(e.Cell)
	}
	return b.entities.Remove(id)
}

// Entity returns a live entity.
func (b *Board) Entity(id entity.ID) (*entity.Entity, bool) {
	return b.entities.Lookup(id)
}

// BlockerAt returns the blocking entity on c, if any.
func (b *Board) BlockerAt(c grid.Cell) (*entity.Entity, bool) {
	return b.at(b.blockers, c)
}

// TriggerAt returns the walk-over entity on c, if any.
func (b *Board) TriggerAt(c grid.Cell) (*entity.Entity, bool) {
	return b.at(b.triggers, c)
}

// IsOccupied reports whether a blocking entity holds c.
func (b *Board) IsOccupied(c grid.Cell) bool {
	return b.blockers.IsOccupied(c)
}

// Player returns the player's handle (NoID before placement).
func (b *Board) Player() entity.ID {
	return b.player
}

// Enemies returns live enemies in placement order.
func (b *Board) Enemies() []*entity.Entity {
	return b.entities.ByRole(entity.RoleEnemy)
}

// ByRole returns live entities of a role in placement order.
func (b *Board) ByRole(r entity.Role) []*entity.Entity {
	return b.entities.ByRole(r)
}

// Entities returns every live entity in placement order.
func (b *Board) Entities() []*entity.Entity {
	return b.entities.All()
}

func (b *Board) at(layer *grid.Occupancy, c grid.Cell) (*entity.Entity, bool) {
	h, ok := layer.At(c)
	if !ok {
		return nil, false
	}
	return b.entities.Lookup(entity.ID(h))
}

func (b *Board) layerFor(e *entity.Entity) *grid.Occupancy {
	if e.Blocking {
		return b.blockers
	}
	return b.triggers
}
