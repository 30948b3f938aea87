package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/scavenger/dice"
	"chosenoffset.com/scavenger/grid"
	"chosenoffset.com/scavenger/session"
	"chosenoffset.com/scavenger/turn"
)

// Summary describes a finished autoplay run
type Summary struct {
	Levels  int  // Levels completed
	Turns   int  // Player turns taken across all levels
	Food    int  // Food left at the end
	Starved bool // Ended by game over rather than the turn limit
}

// Autoplay drives a session with a random-walk player and no pacing, until
// the player starves or maxTurns player turns have been taken. The session
// must auto-settle.
func Autoplay(s *session.Session, roller *dice.Roller, maxTurns int) (Summary, error) {
	var sum Summary
	for sum.Turns < maxTurns {
		sched := s.Scheduler()
		switch sched.State() {
		case turn.StateSetup:
			if err := sched.SetupComplete(); err != nil {
				return sum, err
			}
			continue
		case turn.StateLevelComplete:
			sum.Levels++
			if err := s.NextLevel(); err != nil {
				return sum, fmt.Errorf("after level %d: %w", s.Level(), err)
			}
			continue
		case turn.StateGameOver:
			sum.Starved = true
			sum.Food = sched.Food()
			return sum, nil
		}

		dir := grid.Cardinals[roller.Intn(len(grid.Cardinals))]
		out, enemies, err := sched.Advance(dir.DX, dir.DY)
		if err != nil && !errors.Is(err, turn.ErrGameOver) {
			return sum, fmt.Errorf("turn %d: %w", sum.Turns, err)
		}
		sum.Turns++
		log.Printf("[Autoplay] day %d turn %d: player %v %v -> %v, food %d",
			s.Level(), sched.Turn(), dir, out.Kind, out.To, sched.Food())
		for _, e := range enemies {
			if e.Kind != turn.OutcomeSkipped {
				log.Printf("[Autoplay]   enemy %d %v -> %v", e.Mover, e.Kind, e.To)
			}
		}
	}

	sched := s.Scheduler()
	sum.Starved = sched.State() == turn.StateGameOver
	sum.Food = sched.Food()
	return sum, nil
}
