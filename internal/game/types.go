package game

// Intent is one frame of player input.
type Intent struct {
	DX, DY  int
	Restart bool // Start a new run after game over
}

// IsZero reports whether the intent asks for nothing.
func (i Intent) IsZero() bool {
	return i.DX == 0 && i.DY == 0 && !i.Restart
}

// Phase is the presentation-level pacing state.
type Phase int

const (
	PhaseLevelIntro Phase = iota // "Day N" banner, scheduler still in setup
	PhasePlayer                  // Waiting for player input
	PhaseEnemyDelay              // Turn delay before the enemy phase runs
	PhaseLevelOutro              // Exit reached, waiting to load the next level
	PhaseGameOver                // Starved, waiting for a restart request
)

func (p Phase) String() string {
	switch p {
	case PhaseLevelIntro:
		return "level-intro"
	case PhasePlayer:
		return "player"
	case PhaseEnemyDelay:
		return "enemy-delay"
	case PhaseLevelOutro:
		return "level-outro"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Alpha returns the remaining fraction of the message's lifetime.
func (m Message) Alpha() float64 {
	if m.MaxTime <= 0 {
		return 0
	}
	return m.TimeLeft / m.MaxTime
}
