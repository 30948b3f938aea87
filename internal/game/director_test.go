package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/scavenger/board"
	"chosenoffset.com/scavenger/grid"
	"chosenoffset.com/scavenger/internal/simulation"
	"chosenoffset.com/scavenger/session"
	"chosenoffset.com/scavenger/turn"
)

func newDirector(t *testing.T, mutate func(*simulation.Config), opts ...session.Option) *Director {
	t.Helper()
	cfg := simulation.DefaultConfig()
	cfg.Seed = 5
	if mutate != nil {
		mutate(cfg)
	}
	s, err := session.New(cfg, opts...)
	require.NoError(t, err)
	return NewDirector(s)
}

func skipIntro(t *testing.T, d *Director) {
	t.Helper()
	require.NoError(t, d.Update(d.Session().Config().LevelStartDelay, Intent{}))
	require.Equal(t, PhasePlayer, d.Phase())
}

func TestIntroBannerHoldsSetup(t *testing.T) {
	d := newDirector(t, nil)
	assert.Equal(t, PhaseLevelIntro, d.Phase())
	assert.Equal(t, "Day 1", d.Banner())

	require.NoError(t, d.Update(1, Intent{DX: 1}))
	assert.Equal(t, PhaseLevelIntro, d.Phase())
	assert.Equal(t, turn.StateSetup, d.Session().Scheduler().State())

	require.NoError(t, d.Update(1.5, Intent{}))
	assert.Equal(t, PhasePlayer, d.Phase())
	assert.Empty(t, d.Banner())
	assert.Equal(t, turn.StatePlayerTurn, d.Session().Scheduler().State())
}

func TestTurnDelayBeforeEnemies(t *testing.T) {
	d := newDirector(t, nil, session.WithAutoSettle(true))
	skipIntro(t, d)

	require.NoError(t, d.Update(0.016, Intent{DY: 1}))
	assert.Equal(t, PhaseEnemyDelay, d.Phase())
	assert.Equal(t, turn.StateEnemyPhase, d.Session().Scheduler().State())
	assert.Empty(t, d.Messages(), "move cost is not announced")

	require.NoError(t, d.Update(0.05, Intent{}))
	assert.Equal(t, PhaseEnemyDelay, d.Phase())

	require.NoError(t, d.Update(0.06, Intent{}))
	assert.Equal(t, PhasePlayer, d.Phase())
	assert.Equal(t, turn.StatePlayerTurn, d.Session().Scheduler().State())
	assert.Equal(t, 99, d.Session().Scheduler().Food())
}

func TestDroppedIntentsKeepPlayerPhase(t *testing.T) {
	d := newDirector(t, nil)
	skipIntro(t, d)

	require.NoError(t, d.Update(0.016, Intent{DX: 1, DY: 1}))
	assert.Equal(t, PhasePlayer, d.Phase())

	require.NoError(t, d.Update(0.016, Intent{DY: 1}))
	require.NoError(t, d.Update(1, Intent{}))
	require.Equal(t, PhasePlayer, d.Phase())

	// The first move was never settled, so this attempt is dropped.
	require.NoError(t, d.Update(0.016, Intent{DY: 1}))
	assert.Equal(t, PhasePlayer, d.Phase())
	assert.Equal(t, 99, d.Session().Scheduler().Food())

	sched := d.Session().Scheduler()
	sched.Settle(sched.Player())
	require.NoError(t, d.Update(0.016, Intent{DY: 1}))
	assert.Equal(t, PhaseEnemyDelay, d.Phase())
}

func TestGameOverAndRestart(t *testing.T) {
	d := newDirector(t, func(c *simulation.Config) { c.PlayerStartingFood = 1 })
	skipIntro(t, d)
	first := d.Session().RunID()

	require.NoError(t, d.Update(0.016, Intent{DY: 1}))
	assert.Equal(t, PhaseGameOver, d.Phase())
	assert.Equal(t, "After 1 days, you starved.", d.Banner())

	require.NoError(t, d.Update(5, Intent{DX: 1}))
	assert.Equal(t, PhaseGameOver, d.Phase(), "only a restart request leaves game over")

	require.NoError(t, d.Update(0.016, Intent{Restart: true}))
	assert.Equal(t, PhaseLevelIntro, d.Phase())
	assert.Equal(t, "Day 1", d.Banner())
	assert.NotEqual(t, first, d.Session().RunID())
}

func TestExitLoadsNextLevelAfterDelay(t *testing.T) {
	d := newDirector(t, nil, session.WithAutoSettle(true))
	skipIntro(t, d)

	b := d.Session().Board()
	exit := board.ExitCell(b.Columns, b.Rows)
	require.NoError(t, b.Relocate(b.Player(), grid.Cell{X: exit.X - 1, Y: exit.Y}))

	require.NoError(t, d.Update(0.016, Intent{DX: 1}))
	assert.Equal(t, PhaseLevelOutro, d.Phase())

	require.NoError(t, d.Update(0.5, Intent{}))
	assert.Equal(t, 1, d.Session().Level())

	require.NoError(t, d.Update(0.6, Intent{}))
	assert.Equal(t, 2, d.Session().Level())
	assert.Equal(t, PhaseLevelIntro, d.Phase())
	assert.Equal(t, "Day 2", d.Banner())
	assert.Equal(t, turn.StateSetup, d.Session().Scheduler().State())
}

func TestFoodMessagesFade(t *testing.T) {
	d := newDirector(t, nil)
	d.foodChanged(110, 10)
	d.foodChanged(90, -20)
	require.Len(t, d.Messages(), 2)
	assert.Equal(t, "+10 Food: 110", d.Messages()[0].Text)
	assert.Equal(t, "-20 Food: 90", d.Messages()[1].Text)

	d.updateMessages(messageTime / 2)
	assert.InDelta(t, 0.5, d.Messages()[0].Alpha(), 1e-9)

	d.updateMessages(messageTime)
	assert.Empty(t, d.Messages())
}

func TestIntentIsZero(t *testing.T) {
	assert.True(t, Intent{}.IsZero())
	assert.False(t, Intent{DX: -1}.IsZero())
	assert.False(t, Intent{Restart: true}.IsZero())
}
