package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/scavenger/board"
	"chosenoffset.com/scavenger/gamestate"
	"chosenoffset.com/scavenger/grid"
	"chosenoffset.com/scavenger/internal/simulation"
	"chosenoffset.com/scavenger/turn"
)

func testConfig() *simulation.Config {
	cfg := simulation.DefaultConfig()
	cfg.Seed = 99
	return cfg
}

// reachExit walks the player onto the exit from the cell beside it. That
// cell is on the border row, which generation never fills.
func reachExit(t *testing.T, s *Session) {
	t.Helper()
	b := s.Board()
	exit := board.ExitCell(b.Columns, b.Rows)
	require.NoError(t, b.Relocate(b.Player(), grid.Cell{X: exit.X - 1, Y: exit.Y}))

	sched := s.Scheduler()
	require.NoError(t, sched.SetupComplete())
	_, err := sched.PlayerMove(1, 0)
	require.NoError(t, err)
	require.Equal(t, turn.StateLevelComplete, sched.State())
}

func TestNewStartsInSetup(t *testing.T) {
	var started []int
	s, err := New(testConfig(), WithHooks(Hooks{
		OnLevelStart: func(level, _ int) { started = append(started, level) },
	}))
	require.NoError(t, err)

	assert.NotEmpty(t, s.RunID())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, turn.StateSetup, s.Scheduler().State())
	assert.Equal(t, 100, s.Scheduler().Food())
	assert.Equal(t, []int{1}, started)

	p, ok := s.Board().Entity(s.Board().Player())
	require.True(t, ok)
	assert.Equal(t, grid.Cell{X: 0, Y: 0}, p.Cell)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Columns = 1
	_, err := New(cfg)
	require.ErrorIs(t, err, simulation.ErrInvalidConfig)
}

func TestNewFailsWhenLevelDoesNotFit(t *testing.T) {
	_, err := New(testConfig(), WithResume(1<<30, 10))
	require.ErrorIs(t, err, grid.ErrExhausted)
}

func TestNextLevelCarriesFood(t *testing.T) {
	store := gamestate.NewStore(nil)
	s, err := New(testConfig(), WithStore(store))
	require.NoError(t, err)

	err = s.NextLevel()
	require.ErrorIs(t, err, ErrLevelInProgress)

	reachExit(t, s)
	food := s.Scheduler().Food()
	require.NoError(t, s.NextLevel())

	assert.Equal(t, 2, s.Level())
	assert.Equal(t, food, s.Scheduler().Food())
	assert.Equal(t, turn.StateSetup, s.Scheduler().State())
	assert.Len(t, s.Board().Enemies(), 1)
	assert.Equal(t, gamestate.Progress{Level: 2, Food: food, BestLevel: 2, LastRun: s.RunID()}, store.Progress())
}

func TestHooksFollowEveryLevel(t *testing.T) {
	var states []turn.State
	s, err := New(testConfig())
	require.NoError(t, err)
	s.SetHooks(Hooks{
		OnStateChanged: func(_, to turn.State) { states = append(states, to) },
	})

	reachExit(t, s)
	require.NoError(t, s.NextLevel())
	require.NoError(t, s.Scheduler().SetupComplete())

	assert.Equal(t, []turn.State{turn.StatePlayerTurn, turn.StateLevelComplete, turn.StatePlayerTurn}, states)
}

func TestGameOverIsRecorded(t *testing.T) {
	cfg := testConfig()
	cfg.PlayerStartingFood = 1
	store := gamestate.NewStore(nil)
	s, err := New(cfg, WithStore(store))
	require.NoError(t, err)

	sched := s.Scheduler()
	require.NoError(t, sched.SetupComplete())
	out, err := sched.PlayerMove(0, 1)
	require.NoError(t, err)
	assert.Equal(t, turn.OutcomeStarved, out.Kind)

	p := store.Progress()
	assert.Equal(t, 1, p.Runs)
	assert.Equal(t, 0, p.Level)
	assert.Equal(t, 1, p.BestLevel)
}

func TestRestartBeginsNewRun(t *testing.T) {
	cfg := testConfig()
	cfg.PlayerStartingFood = 1
	s, err := New(cfg)
	require.NoError(t, err)
	first := s.RunID()

	require.NoError(t, s.Scheduler().SetupComplete())
	_, err = s.Scheduler().PlayerMove(0, 1)
	require.NoError(t, err)
	require.Equal(t, turn.StateGameOver, s.Scheduler().State())

	require.NoError(t, s.Restart())
	assert.NotEqual(t, first, s.RunID())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 1, s.Scheduler().Food())
	assert.Equal(t, turn.StateSetup, s.Scheduler().State())
}

func TestResetLevel(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)
	old := s.Board()

	bigger := testConfig()
	bigger.Columns, bigger.Rows = 12, 10
	require.NoError(t, s.ResetLevel(bigger))
	assert.NotSame(t, old, s.Board())
	assert.Equal(t, 12, s.Board().Columns)
	assert.Equal(t, 10, s.Board().Rows)
	assert.Same(t, bigger, s.Config())

	broken := testConfig()
	broken.Level = 0
	current := s.Board()
	require.ErrorIs(t, s.ResetLevel(broken), simulation.ErrInvalidConfig)
	assert.Same(t, current, s.Board())
	assert.Same(t, bigger, s.Config())
}

func TestSameSeedSameBoard(t *testing.T) {
	a, err := New(testConfig())
	require.NoError(t, err)
	b, err := New(testConfig())
	require.NoError(t, err)

	cells := func(s *Session) []grid.Cell {
		var out []grid.Cell
		for _, e := range s.Board().Entities() {
			out = append(out, e.Cell)
		}
		return out
	}
	assert.Equal(t, cells(a), cells(b))
	assert.NotEqual(t, a.RunID(), b.RunID())

	c, err := New(simulation.DefaultConfig())
	require.NoError(t, err)
	d, err := New(simulation.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, cells(c), cells(d), "default seed is fixed")
}
