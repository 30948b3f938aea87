package turn

// ReactionKind names a role-specific side effect for the presentation and
// audio collaborators.
type ReactionKind int

const (
	ReactionAttack      ReactionKind = iota // Enemy hit the player
	ReactionHit                             // Player took a hit
	ReactionChop                            // Player struck a wall
	ReactionDamaged                         // Wall lost hit points
	ReactionEat                             // Player ate food
	ReactionDrink                           // Player drank soda
	ReactionExitReached                     // Player stepped on the exit
	ReactionStarved                         // Player ran out of food
)

func (k ReactionKind) String() string {
	switch k {
	case ReactionAttack:
		return "attack"
	case ReactionHit:
		return "hit"
	case ReactionChop:
		return "chop"
	case ReactionDamaged:
		return "damaged"
	case ReactionEat:
		return "eat"
	case ReactionDrink:
		return "drink"
	case ReactionExitReached:
		return "exit"
	case ReactionStarved:
		return "starved"
	default:
		return "unknown"
	}
}
