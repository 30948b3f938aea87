package entity

// EnemyKind defines an enemy type that can be spawned
type EnemyKind struct {
	Name   string `yaml:"name"`
	Damage int    `yaml:"damage"` // Food taken from the player per attack
	Weight int    `yaml:"weight"` // Relative spawn chance
}

// PickupKind distinguishes the two consumables
type PickupKind int

const (
	PickupFood PickupKind = iota
	PickupSoda
)

func (k PickupKind) String() string {
	switch k {
	case PickupFood:
		return "food"
	case PickupSoda:
		return "soda"
	default:
		return "pickup"
	}
}

// PickupKinds lists every pickup kind in spawn order.
var PickupKinds = []PickupKind{PickupFood, PickupSoda}
