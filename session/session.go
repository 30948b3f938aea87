// Package session owns one run of the game: the configuration, the random
// source, the current board and its scheduler, and the food carried from
// one level to the next. Entry points construct a single Session and hand
// it to whichever frontend drives it.
package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"chosenoffset.com/scavenger/board"
	"chosenoffset.com/scavenger/dice"
	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/gamestate"
	"chosenoffset.com/scavenger/internal/simulation"
	"chosenoffset.com/scavenger/turn"
)

// ErrLevelInProgress is returned by NextLevel before the exit is reached.
var ErrLevelInProgress = errors.New("level still in progress")

// Hooks receive everything the scheduler reports, for every level of the
// run. Any field may be nil.
type Hooks struct {
	OnLevelStart    func(level, food int)
	OnEntityMoved   func(ev turn.MoveEvent)
	OnEntityRemoved func(id entity.ID)
	OnReaction      func(id entity.ID, kind turn.ReactionKind)
	OnFoodChanged   func(food, delta int)
	OnStateChanged  func(from, to turn.State)
}

// Option configures a Session
type Option func(*Session)

// WithRoller sets the random source. By default one is seeded from the
// config's seed.
func WithRoller(r *dice.Roller) Option {
	return func(s *Session) { s.roller = r }
}

// WithStore persists progress after every level and on game over.
func WithStore(store *gamestate.Store) Option {
	return func(s *Session) { s.store = store }
}

// WithHooks installs the collaborator callbacks.
func WithHooks(h Hooks) Option {
	return func(s *Session) { s.hooks = h }
}

// WithAutoSettle makes every move instantaneous. Headless runs use it;
// animated frontends leave it off and call Scheduler().Settle.
func WithAutoSettle(auto bool) Option {
	return func(s *Session) { s.autoSettle = auto }
}

// WithResume starts at a saved level with saved food instead of the
// configured start.
func WithResume(level, food int) Option {
	return func(s *Session) {
		s.level = level
		s.food = food
	}
}

// Session is the top-level owner of a run
type Session struct {
	runID      string
	cfg        *simulation.Config
	roller     *dice.Roller
	generator  *board.Generator
	store      *gamestate.Store
	hooks      Hooks
	autoSettle bool

	level     int
	food      int // Food carried into the current level
	board     *board.Board
	scheduler *turn.Scheduler
}

// New validates the config and generates the first level.
func New(cfg *simulation.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		runID: uuid.NewString(),
		cfg:   cfg,
		level: cfg.Level,
		food:  cfg.PlayerStartingFood,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.roller == nil {
		s.roller = dice.NewSeededRoller(cfg.Seed)
	}
	s.generator = board.NewGenerator(cfg.Generator(), s.roller)

	if err := s.startLevel(s.level, s.food); err != nil {
		return nil, err
	}
	return s, nil
}

// RunID identifies this run in logs and saved progress.
func (s *Session) RunID() string {
	return s.runID
}

// Config returns the active configuration
func (s *Session) Config() *simulation.Config {
	return s.cfg
}

// Level returns the current level number
func (s *Session) Level() int {
	return s.level
}

// Board returns the current level's board
func (s *Session) Board() *board.Board {
	return s.board
}

// Scheduler returns the current level's scheduler
func (s *Session) Scheduler() *turn.Scheduler {
	return s.scheduler
}

// SetHooks replaces the collaborator callbacks, including those of the
// level in progress.
func (s *Session) SetHooks(h Hooks) {
	s.hooks = h
	s.wire(s.scheduler)
}

// ResetLevel replaces the configuration and regenerates the current level
// from it, keeping the food carried into the level. On error the session is
// left as it was.
func (s *Session) ResetLevel(cfg *simulation.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	prevCfg, prevGen := s.cfg, s.generator
	s.cfg = cfg
	s.generator = board.NewGenerator(cfg.Generator(), s.roller)
	if err := s.startLevel(s.level, s.food); err != nil {
		s.cfg, s.generator = prevCfg, prevGen
		return err
	}
	return nil
}

// NextLevel advances after the exit has been reached, carrying the
// remaining food into a freshly generated level.
func (s *Session) NextLevel() error {
	if state := s.scheduler.State(); state != turn.StateLevelComplete {
		return fmt.Errorf("next level from %v: %w", state, ErrLevelInProgress)
	}
	return s.startLevel(s.level+1, s.scheduler.Food())
}

// Restart begins a new run from the configured start level and food. The
// run ID changes.
func (s *Session) Restart() error {
	prev := s.runID
	s.runID = uuid.NewString()
	if err := s.startLevel(s.cfg.Level, s.cfg.PlayerStartingFood); err != nil {
		s.runID = prev
		return err
	}
	return nil
}

// startLevel generates a board and a scheduler for it. Nothing changes if
// generation fails.
func (s *Session) startLevel(level, food int) error {
	b, err := s.generator.Generate(level)
	if err != nil {
		log.Printf("[Session %s] Failed to generate level %d: %v", s.shortID(), level, err)
		return fmt.Errorf("start level %d: %w", level, err)
	}

	rules := s.cfg.Rules(food)
	rules.AutoSettle = s.autoSettle
	sched := turn.NewScheduler(b, rules)
	s.wire(sched)

	s.level, s.food = level, food
	s.board, s.scheduler = b, sched
	log.Printf("[Session %s] Level %d: %d enemies, %d walls, %d pickups, food %d",
		s.shortID(), level, len(b.Enemies()), len(b.ByRole(entity.RoleWall)),
		len(b.ByRole(entity.RolePickup)), food)

	if s.store != nil {
		if err := s.store.RecordLevel(s.runID, level, food); err != nil {
			log.Printf("[Session %s] Warning: failed to save progress: %v", s.shortID(), err)
		}
	}
	if s.hooks.OnLevelStart != nil {
		s.hooks.OnLevelStart(level, food)
	}
	return nil
}

func (s *Session) wire(sched *turn.Scheduler) {
	sched.OnEntityMoved = s.hooks.OnEntityMoved
	sched.OnEntityRemoved = s.hooks.OnEntityRemoved
	sched.OnReaction = s.hooks.OnReaction
	sched.OnFoodChanged = s.hooks.OnFoodChanged
	sched.OnStateChanged = func(from, to turn.State) {
		switch to {
		case turn.StateLevelComplete:
			log.Printf("[Session %s] Level %d complete with %d food", s.shortID(), s.level, sched.Food())
		case turn.StateGameOver:
			log.Printf("[Session %s] Starved on day %d after %d turns", s.shortID(), s.level, sched.Turn())
			if s.store != nil {
				if err := s.store.RecordGameOver(s.runID, s.level); err != nil {
					log.Printf("[Session %s] Warning: failed to save progress: %v", s.shortID(), err)
				}
			}
		}
		if s.hooks.OnStateChanged != nil {
			s.hooks.OnStateChanged(from, to)
		}
	}
}

func (s *Session) shortID() string {
	if len(s.runID) > 8 {
		return s.runID[:8]
	}
	return s.runID
}
