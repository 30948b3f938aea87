package turn

import (
	"fmt"

	"chosenoffset.com/scavenger/board"
	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/grid"
)

// OutcomeKind describes what a move attempt did
type OutcomeKind int

const (
	OutcomeIdle              OutcomeKind = iota // No intent, nothing attempted
	OutcomeSucceeded                            // Mover now stands on To
	OutcomeBlockedByObstacle                    // A blocking entity holds To
	OutcomeBlockedByBoundary                    // To is the outer wall
	OutcomeAlreadyMoving                        // Mover still settling a previous move
	OutcomeSkipped                              // Enemy rest turn
	OutcomeStarved                              // Move cost emptied the food supply
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIdle:
		return "idle"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeBlockedByObstacle:
		return "blocked"
	case OutcomeBlockedByBoundary:
		return "boundary"
	case OutcomeAlreadyMoving:
		return "already-moving"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeStarved:
		return "starved"
	default:
		return "unknown"
	}
}

// Outcome is the result of one move attempt
type Outcome struct {
	Mover     entity.ID
	Kind      OutcomeKind
	From      grid.Cell
	To        grid.Cell
	Direction grid.Direction
	Blocker   entity.ID // Set for OutcomeBlockedByObstacle
	Reacted   bool      // Blocker had the mover's target role
}

// AttemptMove tries to move an entity one cell. It only updates occupancy;
// reactions to the blocker are left to the caller, signalled by
// Outcome.Reacted.
//
// A free destination is taken atomically. A blocking occupant stops the
// move; Reacted is true when the occupant's role is the one the mover's role
// targets. Walk-over triggers never block.
func AttemptMove(b *board.Board, id entity.ID, dir grid.Direction) (Outcome, error) {
	out := Outcome{Mover: id, Direction: dir, Blocker: entity.NoID}
	if !dir.Valid() {
		return out, fmt.Errorf("%w: %v", grid.ErrInvalidDirection, dir)
	}
	mover, ok := b.Entity(id)
	if !ok {
		return out, fmt.Errorf("move entity %d: not on board", id)
	}
	out.From = mover.Cell
	out.To = mover.Cell.Add(dir)

	if mover.Moving {
		out.Kind = OutcomeAlreadyMoving
		return out, fmt.Errorf("move %v: %w", mover, ErrAlreadyMoving)
	}

	if !b.InBounds(out.To) {
		out.Kind = OutcomeBlockedByBoundary
		return out, nil
	}

	if blocker, held := b.BlockerAt(out.To); held {
		out.Kind = OutcomeBlockedByObstacle
		out.Blocker = blocker.ID
		if target, reacts := mover.Role.Target(); reacts && blocker.Role == target && blocker.Interactive {
			out.Reacted = true
		}
		return out, nil
	}

	if err := b.Relocate(id, out.To); err != nil {
		return out, err
	}
	out.Kind = OutcomeSucceeded
	return out, nil
}

// EnemyDirection picks an enemy's step toward a target: vertical when the
// two share a column, horizontal otherwise. The approach is an orthogonal
// staircase, never diagonal. When both cells coincide the step is Down.
func EnemyDirection(from, to grid.Cell) grid.Direction {
	if to.X == from.X {
		if to.Y > from.Y {
			return grid.Up
		}
		return grid.Down
	}
	if to.X > from.X {
		return grid.Right
	}
	return grid.Left
}
