// Package game paces a session for interactive frontends. The Director owns
// the timers the core leaves out: the level banner before play starts, the
// delay before enemies act, the pause after the exit, and the game-over
// screen. It is engine-agnostic; ebiten and the terminal both drive it.
package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/grid"
	"chosenoffset.com/scavenger/session"
	"chosenoffset.com/scavenger/turn"
)

const messageTime = 1.5

// Director drives a session from frame updates.
type Director struct {
	session *session.Session

	phase    Phase
	timer    float64
	banner   string
	messages []Message
	quietFee bool // Next food change is the move cost

	// Callbacks, forwarded from the session
	OnLevelStart    func(level int)
	OnEntityMoved   func(ev turn.MoveEvent)
	OnEntityRemoved func(id entity.ID)
	OnReaction      func(id entity.ID, kind turn.ReactionKind)
}

// NewDirector takes over the session's hooks and shows the banner of its
// current level.
func NewDirector(s *session.Session) *Director {
	d := &Director{session: s}
	s.SetHooks(session.Hooks{
		OnEntityMoved: func(ev turn.MoveEvent) {
			if d.OnEntityMoved != nil {
				d.OnEntityMoved(ev)
			}
		},
		OnEntityRemoved: func(id entity.ID) {
			if d.OnEntityRemoved != nil {
				d.OnEntityRemoved(id)
			}
		},
		OnReaction: func(id entity.ID, kind turn.ReactionKind) {
			if d.OnReaction != nil {
				d.OnReaction(id, kind)
			}
		},
		OnFoodChanged: d.foodChanged,
		OnLevelStart:  func(level, _ int) { d.beginLevel(level) },
	})
	d.beginLevel(s.Level())
	return d
}

// Session returns the driven session
func (d *Director) Session() *session.Session {
	return d.session
}

// Phase returns the current pacing phase
func (d *Director) Phase() Phase {
	return d.phase
}

// Banner returns the full-screen text to show, or "" during play.
func (d *Director) Banner() string {
	return d.banner
}

// Messages returns the active floating messages, oldest first.
func (d *Director) Messages() []Message {
	return d.messages
}

// Update advances the timers by dt seconds and applies the frame's intent.
func (d *Director) Update(dt float64, intent Intent) error {
	d.updateMessages(dt)
	sched := d.session.Scheduler()

	switch d.phase {
	case PhaseLevelIntro:
		if d.tick(dt) {
			if err := sched.SetupComplete(); err != nil {
				return fmt.Errorf("start level: %w", err)
			}
			d.banner = ""
			d.phase = PhasePlayer
		}

	case PhasePlayer:
		if intent.DX == 0 && intent.DY == 0 {
			return nil
		}
		d.quietFee = true
		out, err := sched.PlayerMove(intent.DX, intent.DY)
		d.quietFee = false
		switch {
		case errors.Is(err, turn.ErrAlreadyMoving), errors.Is(err, grid.ErrInvalidDirection):
			// Dropped; the turn is still the player's.
			return nil
		case err != nil:
			return fmt.Errorf("player move: %w", err)
		}
		if out.Kind == turn.OutcomeStarved {
			d.gameOver()
			return nil
		}
		d.afterPlayer()

	case PhaseEnemyDelay:
		if !d.tick(dt) {
			return nil
		}
		if _, err := sched.RunEnemyPhase(); err != nil {
			return fmt.Errorf("enemy phase: %w", err)
		}
		if sched.State() == turn.StateGameOver {
			d.gameOver()
			return nil
		}
		d.phase = PhasePlayer

	case PhaseLevelOutro:
		if d.tick(dt) {
			if err := d.session.NextLevel(); err != nil {
				return fmt.Errorf("next level: %w", err)
			}
		}

	case PhaseGameOver:
		if intent.Restart {
			log.Printf("[Director] Restarting after day %d", d.session.Level())
			if err := d.session.Restart(); err != nil {
				return fmt.Errorf("restart: %w", err)
			}
		}
	}
	return nil
}

func (d *Director) afterPlayer() {
	sched := d.session.Scheduler()
	switch sched.State() {
	case turn.StateEnemyPhase:
		d.phase = PhaseEnemyDelay
		d.timer = d.session.Config().TurnDelay
	case turn.StateLevelComplete:
		d.phase = PhaseLevelOutro
		d.timer = d.session.Config().RestartDelay
	case turn.StateGameOver:
		d.gameOver()
	}
}

func (d *Director) beginLevel(level int) {
	d.phase = PhaseLevelIntro
	d.timer = d.session.Config().LevelStartDelay
	d.banner = fmt.Sprintf("Day %d", level)
	d.messages = nil
	if d.OnLevelStart != nil {
		d.OnLevelStart(level)
	}
}

func (d *Director) gameOver() {
	d.phase = PhaseGameOver
	d.banner = fmt.Sprintf("After %d days, you starved.", d.session.Level())
}

// tick counts the timer down and reports whether it has run out.
func (d *Director) tick(dt float64) bool {
	d.timer -= dt
	return d.timer <= 0
}

func (d *Director) foodChanged(food, delta int) {
	if d.quietFee {
		d.quietFee = false
		return
	}
	text := fmt.Sprintf("%+d Food: %d", delta, food)
	d.messages = append(d.messages, Message{Text: text, TimeLeft: messageTime, MaxTime: messageTime})
}

func (d *Director) updateMessages(dt float64) {
	var active []Message
	for _, msg := range d.messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	d.messages = active
}
