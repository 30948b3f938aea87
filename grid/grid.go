// Package grid provides the cell geometry shared by the board and the turn
// system: coordinates, cardinal directions, the free-cell pool used during
// level generation, and the occupancy set used for collision.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted is returned when the free-cell pool has no cells left.
	ErrExhausted = errors.New("free-cell pool exhausted")
	// ErrInvalidDirection is returned for anything other than a cardinal unit step.
	ErrInvalidDirection = errors.New("invalid direction")
)

// Cell is a discrete grid position. Y grows upward, so (0,0) is the
// bottom-left corner of the board.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in the given direction.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a movement step. Only the four cardinal unit vectors are valid.
type Direction struct {
	DX, DY int
}

var (
	None  = Direction{}
	Up    = Direction{DX: 0, DY: 1}
	Down  = Direction{DX: 0, DY: -1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Cardinals lists the valid directions.
var Cardinals = [4]Direction{Up, Down, Left, Right}

// ParseDirection validates a raw (dx, dy) intent.
func ParseDirection(dx, dy int) (Direction, error) {
	d := Direction{DX: dx, DY: dy}
	if !d.Valid() {
		return None, fmt.Errorf("%w: (%d,%d)", ErrInvalidDirection, dx, dy)
	}
	return d, nil
}

// Valid reports whether d is one of the four cardinal unit vectors.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// IsZero reports whether d is the empty intent.
func (d Direction) IsZero() bool {
	return d == None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Terrain is the static layer under the entities.
type Terrain int

const (
	TerrainVoid      Terrain = iota // Outside the outer wall ring
	TerrainFloor                    // Walkable board cell
	TerrainOuterWall                // Indestructible ring around the board
)

// TerrainAt classifies a cell of a columns x rows board. The outer wall ring
// sits at x ∈ {-1, columns} or y ∈ {-1, rows}.
func TerrainAt(columns, rows int, c Cell) Terrain {
	if c.X < -1 || c.Y < -1 || c.X > columns || c.Y > rows {
		return TerrainVoid
	}
	if c.X == -1 || c.Y == -1 || c.X == columns || c.Y == rows {
		return TerrainOuterWall
	}
	return TerrainFloor
}

// InBounds reports whether c is a floor cell of a columns x rows board.
func InBounds(columns, rows int, c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < columns && c.Y < rows
}

// Sign returns -1, 0 or 1.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
