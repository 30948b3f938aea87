// Package entity provides the grid entities of a level: the player, enemies,
// breakable walls, pickups and the exit. Every entity is one record tagged
// with a Role; behavior is selected by switching on the role, not by type.
package entity

import (
	"fmt"

	"chosenoffset.com/scavenger/grid"
)

// Role identifies the kind of entity
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
	RoleWall
	RolePickup
	RoleExit
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	case RoleWall:
		return "wall"
	case RolePickup:
		return "pickup"
	case RoleExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Blocking reports whether entities of this role halt movement into their cell.
func (r Role) Blocking() bool {
	switch r {
	case RolePlayer, RoleEnemy, RoleWall:
		return true
	}
	return false
}

// Interactive reports whether a mover colliding with this role may react.
func (r Role) Interactive() bool {
	switch r {
	case RolePlayer, RoleWall, RolePickup, RoleExit:
		return true
	}
	return false
}

// Target returns the blocking role a mover of role r reacts to when bumping
// into it: the player chops walls, enemies attack the player.
func (r Role) Target() (Role, bool) {
	switch r {
	case RolePlayer:
		return RoleWall, true
	case RoleEnemy:
		return RolePlayer, true
	}
	return 0, false
}

// Mobile reports whether entities of this role take turns.
func (r Role) Mobile() bool {
	return r == RolePlayer || r == RoleEnemy
}

// ID is a non-owning handle into a Table. Handles stay valid after the
// entity is removed; lookups then report it as dead.
type ID int

// NoID is the zero handle for "no entity".
const NoID ID = -1

// Entity represents anything placed on the board
type Entity struct {
	ID   ID
	Role Role
	Kind string // enemy kind name, pickup kind, "wall", ...

	// Position (grid coordinates)
	Cell grid.Cell

	Blocking    bool
	Interactive bool

	HP     int        // Walls: hits left before destruction
	Damage int        // Enemies: food taken per attack
	Pickup PickupKind // Pickups: food or soda
	Value  int        // Pickups: food restored

	Alive bool

	// Turn state
	SkipMove bool // Enemies: skip the next invoked turn
	Moving   bool // Still settling a previous move on screen
}

func newEntity(role Role, kind string, cell grid.Cell) *Entity {
	return &Entity{
		ID:          NoID,
		Role:        role,
		Kind:        kind,
		Cell:        cell,
		Blocking:    role.Blocking(),
		Interactive: role.Interactive(),
		Alive:       true,
	}
}

// NewPlayer creates the player entity
func NewPlayer(cell grid.Cell) *Entity {
	return newEntity(RolePlayer, "player", cell)
}

// NewEnemy creates an enemy of the given kind
func NewEnemy(cell grid.Cell, kind EnemyKind) *Entity {
	e := newEntity(RoleEnemy, kind.Name, cell)
	e.Damage = kind.Damage
	return e
}

// NewWall creates a breakable wall
func NewWall(cell grid.Cell, hp int) *Entity {
	e := newEntity(RoleWall, "wall", cell)
	e.HP = hp
	return e
}

// NewPickup creates a food or soda pickup
func NewPickup(cell grid.Cell, kind PickupKind, value int) *Entity {
	e := newEntity(RolePickup, kind.String(), cell)
	e.Pickup = kind
	e.Value = value
	return e
}

// NewExit creates the level exit
func NewExit(cell grid.Cell) *Entity {
	return newEntity(RoleExit, "exit", cell)
}

// TakeDamage removes hit points and reports whether the entity is destroyed.
func (e *Entity) TakeDamage(amount int) bool {
	e.HP -= amount
	return e.HP <= 0
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s#%d@%v", e.Kind, e.ID, e.Cell)
}
