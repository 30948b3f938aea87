package turn

import "errors"

var (
	// ErrAlreadyMoving is returned when the mover is still settling its
	// previous move. The attempt is dropped.
	ErrAlreadyMoving = errors.New("entity is already moving")
	// ErrGameOver is returned by every turn-advance call once the player
	// has starved. Only a new scheduler recovers.
	ErrGameOver = errors.New("game over")
	// ErrSetupInProgress is returned before SetupComplete.
	ErrSetupInProgress = errors.New("level setup in progress")
	// ErrNotPlayerTurn is returned for player input outside the player turn.
	ErrNotPlayerTurn = errors.New("not the player's turn")
	// ErrNotEnemyPhase is returned when the enemy phase is run out of order.
	ErrNotEnemyPhase = errors.New("not the enemy phase")
	// ErrLevelComplete is returned once the player has reached the exit.
	ErrLevelComplete = errors.New("level complete")
)
