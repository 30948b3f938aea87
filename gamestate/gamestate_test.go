package gamestate

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("scavenger_test_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	return m
}

func TestMemoryOnlyStore(t *testing.T) {
	s := NewStore(nil)
	assert.False(t, s.Persistent())

	require.NoError(t, s.RecordLevel("run", 3, 42))
	assert.Equal(t, Progress{Level: 3, Food: 42, BestLevel: 3, LastRun: "run"}, s.Progress())
	require.NoError(t, s.Save())
	require.NoError(t, s.Load())
	assert.Equal(t, Progress{}, s.Progress(), "nothing survives a reload")
}

func TestFreshStoreHasNoRun(t *testing.T) {
	s := NewStore(newManager(t))
	assert.True(t, s.Persistent())
	_, _, ok := s.Resume()
	assert.False(t, ok)
}

func TestProgressSurvivesReload(t *testing.T) {
	m := newManager(t)
	s := NewStore(m)
	require.NoError(t, s.RecordLevel("a", 2, 80))
	require.NoError(t, s.RecordLevel("a", 4, 55))

	reloaded := NewStore(m)
	level, food, ok := reloaded.Resume()
	require.True(t, ok)
	assert.Equal(t, 4, level)
	assert.Equal(t, 55, food)
	assert.Equal(t, 4, reloaded.Progress().BestLevel)
}

func TestGameOverKeepsBestLevel(t *testing.T) {
	m := newManager(t)
	s := NewStore(m)
	require.NoError(t, s.RecordLevel("a", 6, 10))
	require.NoError(t, s.RecordGameOver("a", 6))
	require.NoError(t, s.RecordLevel("b", 2, 100))
	require.NoError(t, s.RecordGameOver("b", 2))

	p := NewStore(m).Progress()
	assert.Equal(t, 0, p.Level)
	assert.Equal(t, 6, p.BestLevel)
	assert.Equal(t, 2, p.Runs)
	assert.Equal(t, "b", p.LastRun)
	_, _, ok := NewStore(m).Resume()
	assert.False(t, ok)
}

func TestCorruptProgressFallsBackToEmpty(t *testing.T) {
	m := newManager(t)
	require.NoError(t, m.SaveObjectProp(progressObject, progressProperty, []byte("level: [")))

	s := NewStore(m)
	assert.Equal(t, Progress{}, s.Progress())
	assert.Error(t, s.Load())
}

func TestReset(t *testing.T) {
	m := newManager(t)
	s := NewStore(m)
	require.NoError(t, s.RecordLevel("a", 5, 20))
	require.NoError(t, s.Reset())
	assert.Equal(t, Progress{}, NewStore(m).Progress())
}
