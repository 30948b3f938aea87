// Package turn provides turn-based game management.
// It alternates a single player turn with a batch of enemy turns, resolves
// moves against the board and reports everything that happens through
// callbacks.
package turn

import (
	"errors"
	"fmt"

	"chosenoffset.com/scavenger/board"
	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/grid"
)

// State represents the current phase of the level
type State int

const (
	StateSetup         State = iota // Board shown, movement blocked until SetupComplete
	StatePlayerTurn                 // Waiting for the player's single attempt
	StateEnemyPhase                 // Enemies acting in registration order
	StateLevelComplete              // Player reached the exit
	StateGameOver                   // Player starved; terminal
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StatePlayerTurn:
		return "player-turn"
	case StateEnemyPhase:
		return "enemy-phase"
	case StateLevelComplete:
		return "level-complete"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Rules holds the per-level numbers the scheduler needs
type Rules struct {
	StartingFood int     // Food carried into the level
	MoveCost     int     // Food spent per player attempt
	WallDamage   int     // Hit points a chop removes from a wall
	MoveTime     float64 // Seconds a move takes on screen, reported in MoveEvent
	AutoSettle   bool    // Treat moves as instantaneous; no Settle calls needed
}

// MoveEvent reports a successful move
type MoveEvent struct {
	ID       entity.ID
	From     grid.Cell
	To       grid.Cell
	Duration float64 // Seconds
}

// Scheduler owns the phase state of one level. It is strictly sequential:
// callers drive it from a single goroutine.
type Scheduler struct {
	board   *board.Board
	rules   Rules
	state   State
	player  entity.ID
	enemies []entity.ID
	food    int
	turn    int

	// Callbacks
	OnEntityMoved   func(ev MoveEvent)
	OnEntityRemoved func(id entity.ID)
	OnReaction      func(id entity.ID, kind ReactionKind)
	OnFoodChanged   func(food, delta int)
	OnStateChanged  func(from, to State)
}

// NewScheduler creates a scheduler in the setup phase. The board's player
// becomes the player and its enemies are registered in placement order.
func NewScheduler(b *board.Board, rules Rules) *Scheduler {
	s := &Scheduler{
		board:  b,
		rules:  rules,
		state:  StateSetup,
		player: b.Player(),
		food:   rules.StartingFood,
	}
	for _, e := range b.Enemies() {
		s.enemies = append(s.enemies, e.ID)
	}
	return s
}

// RegisterEnemy appends an enemy to the end of the turn order.
func (s *Scheduler) RegisterEnemy(id entity.ID) {
	s.enemies = append(s.enemies, id)
}

// Enemies returns the turn order.
func (s *Scheduler) Enemies() []entity.ID {
	return append([]entity.ID(nil), s.enemies...)
}

// Board returns the board the scheduler drives.
func (s *Scheduler) Board() *board.Board {
	return s.board
}

// State returns the current phase.
func (s *Scheduler) State() State {
	return s.state
}

// Food returns the player's remaining food.
func (s *Scheduler) Food() int {
	return s.food
}

// Turn returns the number of completed player turns.
func (s *Scheduler) Turn() int {
	return s.turn
}

// Player returns the player's handle.
func (s *Scheduler) Player() entity.ID {
	return s.player
}

// SetupComplete ends the setup phase. Calling it in any other phase is a
// no-op, except after game over.
func (s *Scheduler) SetupComplete() error {
	if s.state == StateGameOver {
		return ErrGameOver
	}
	if s.state == StateSetup {
		s.setState(StatePlayerTurn)
	}
	return nil
}

// Settle marks a mover's on-screen transition as finished.
func (s *Scheduler) Settle(id entity.ID) {
	if e, ok := s.board.Entity(id); ok {
		e.Moving = false
	}
}

// PlayerMove spends the player turn on one attempt in direction (dx, dy).
// A zero intent is ignored and keeps the turn. Invalid directions and a
// player still settling are rejected without consuming the turn. Every
// other attempt, blocked or not, hands the turn to the enemies.
func (s *Scheduler) PlayerMove(dx, dy int) (Outcome, error) {
	idle := Outcome{Mover: s.player, Kind: OutcomeIdle, Blocker: entity.NoID}
	if err := s.checkState(StatePlayerTurn, ErrNotPlayerTurn); err != nil {
		return idle, err
	}
	if dx == 0 && dy == 0 {
		return idle, nil
	}
	dir, err := grid.ParseDirection(dx, dy)
	if err != nil {
		return idle, err
	}
	player, ok := s.board.Entity(s.player)
	if !ok {
		return idle, fmt.Errorf("player entity %d not on board", s.player)
	}
	if player.Moving {
		out := idle
		out.Kind = OutcomeAlreadyMoving
		out.From, out.To, out.Direction = player.Cell, player.Cell.Add(dir), dir
		return out, fmt.Errorf("player: %w", ErrAlreadyMoving)
	}

	s.turn++
	s.loseFood(s.rules.MoveCost)
	if s.state == StateGameOver {
		out := idle
		out.Kind = OutcomeStarved
		out.From, out.To, out.Direction = player.Cell, player.Cell, dir
		return out, nil
	}

	out, err := AttemptMove(s.board, s.player, dir)
	if err != nil {
		return out, err
	}
	s.resolvePlayer(out)

	if s.state == StatePlayerTurn {
		s.setState(StateEnemyPhase)
	}
	return out, nil
}

// RunEnemyPhase lets every registered enemy act once, in registration
// order, then returns the turn to the player. It stops early if the player
// starves.
func (s *Scheduler) RunEnemyPhase() ([]Outcome, error) {
	if err := s.checkState(StateEnemyPhase, ErrNotEnemyPhase); err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(s.enemies))
	for _, id := range s.enemies {
		if s.state == StateGameOver {
			break
		}
		e, ok := s.board.Entity(id)
		if !ok {
			continue
		}
		out, err := s.enemyTurn(e)
		if err != nil && !errors.Is(err, ErrAlreadyMoving) {
			return outcomes, err
		}
		outcomes = append(outcomes, out)
	}

	if s.state == StateEnemyPhase {
		s.setState(StatePlayerTurn)
	}
	return outcomes, nil
}

// Advance runs one full round: the player's attempt and, if it consumed
// the turn, the enemy phase.
func (s *Scheduler) Advance(dx, dy int) (Outcome, []Outcome, error) {
	out, err := s.PlayerMove(dx, dy)
	if err != nil || s.state != StateEnemyPhase {
		return out, nil, err
	}
	enemyOuts, err := s.RunEnemyPhase()
	return out, enemyOuts, err
}

func (s *Scheduler) checkState(want State, wrong error) error {
	switch s.state {
	case want:
		return nil
	case StateGameOver:
		return ErrGameOver
	case StateSetup:
		return ErrSetupInProgress
	case StateLevelComplete:
		return ErrLevelComplete
	default:
		return fmt.Errorf("%w (state %v)", wrong, s.state)
	}
}

// resolvePlayer applies the player's reactions: chopping a wall on a
// blocked move, consuming a pickup or reaching the exit on a successful one.
func (s *Scheduler) resolvePlayer(out Outcome) {
	switch out.Kind {
	case OutcomeSucceeded:
		s.moved(out)
		trigger, ok := s.board.TriggerAt(out.To)
		if !ok {
			return
		}
		switch trigger.Role {
		case entity.RolePickup:
			kind := ReactionEat
			if trigger.Pickup == entity.PickupSoda {
				kind = ReactionDrink
			}
			s.react(s.player, kind)
			s.gainFood(trigger.Value)
			s.remove(trigger.ID)
		case entity.RoleExit:
			s.react(s.player, ReactionExitReached)
			s.setState(StateLevelComplete)
		}
	case OutcomeBlockedByObstacle:
		if !out.Reacted {
			return
		}
		wall, ok := s.board.Entity(out.Blocker)
		if !ok {
			return
		}
		s.react(s.player, ReactionChop)
		destroyed := wall.TakeDamage(s.rules.WallDamage)
		s.react(wall.ID, ReactionDamaged)
		if destroyed {
			s.remove(wall.ID)
		}
	}
}

// enemyTurn runs one enemy's invocation: a rest turn every other time,
// otherwise a step toward the player and an attack if the player blocks it.
func (s *Scheduler) enemyTurn(e *entity.Entity) (Outcome, error) {
	if e.SkipMove {
		e.SkipMove = false
		return Outcome{Mover: e.ID, Kind: OutcomeSkipped, From: e.Cell, To: e.Cell, Blocker: entity.NoID}, nil
	}
	player, ok := s.board.Entity(s.player)
	if !ok {
		return Outcome{Mover: e.ID, Kind: OutcomeIdle, From: e.Cell, To: e.Cell, Blocker: entity.NoID}, nil
	}

	out, err := AttemptMove(s.board, e.ID, EnemyDirection(e.Cell, player.Cell))
	e.SkipMove = true
	if err != nil {
		return out, err
	}

	switch out.Kind {
	case OutcomeSucceeded:
		s.moved(out)
	case OutcomeBlockedByObstacle:
		if out.Reacted {
			s.react(e.ID, ReactionAttack)
			s.react(s.player, ReactionHit)
			s.loseFood(e.Damage)
		}
	}
	return out, nil
}

func (s *Scheduler) moved(out Outcome) {
	if e, ok := s.board.Entity(out.Mover); ok && !s.rules.AutoSettle {
		e.Moving = true
	}
	if s.OnEntityMoved != nil {
		s.OnEntityMoved(MoveEvent{ID: out.Mover, From: out.From, To: out.To, Duration: s.rules.MoveTime})
	}
}

func (s *Scheduler) remove(id entity.ID) {
	if !s.board.Remove(id) {
		return
	}
	if s.OnEntityRemoved != nil {
		s.OnEntityRemoved(id)
	}
}

func (s *Scheduler) react(id entity.ID, kind ReactionKind) {
	if s.OnReaction != nil {
		s.OnReaction(id, kind)
	}
}

func (s *Scheduler) gainFood(amount int) {
	s.food += amount
	if s.OnFoodChanged != nil {
		s.OnFoodChanged(s.food, amount)
	}
}

// loseFood applies a damaging event and runs the game-over check.
func (s *Scheduler) loseFood(amount int) {
	s.food -= amount
	if s.OnFoodChanged != nil {
		s.OnFoodChanged(s.food, -amount)
	}
	if s.food <= 0 && s.state != StateGameOver {
		s.react(s.player, ReactionStarved)
		s.setState(StateGameOver)
	}
}

func (s *Scheduler) setState(to State) {
	from := s.state
	if from == to || from == StateGameOver {
		return
	}
	s.state = to
	if s.OnStateChanged != nil {
		s.OnStateChanged(from, to)
	}
}
