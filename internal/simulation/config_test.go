package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/grid"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8, cfg.Columns)
	assert.Equal(t, Range{Min: 5, Max: 9}, cfg.WallCountRange)
	assert.Equal(t, 100, cfg.PlayerStartingFood)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	data := `
columns: 10
rows: 12
foodCountRange: {min: 2, max: 3}
pickupValue: {food: 5, soda: 15}
enemyKinds:
  - {name: zombie, damage: 10, weight: 3}
  - {name: vampire, damage: 20, weight: 1}
playerStart: {x: 0, y: 0}
seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Columns)
	assert.Equal(t, 12, cfg.Rows)
	assert.Equal(t, Range{Min: 2, Max: 3}, cfg.FoodCountRange)
	assert.Equal(t, Range{Min: 5, Max: 9}, cfg.WallCountRange, "untouched keys keep defaults")
	assert.Equal(t, PickupValues{Food: 5, Soda: 15}, cfg.PickupValue)
	assert.Equal(t, int64(42), cfg.Seed)
	require.Len(t, cfg.EnemyKinds, 2)
	assert.Equal(t, entity.EnemyKind{Name: "vampire", Damage: 20, Weight: 1}, cfg.EnemyKinds[1])
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [1, 2"), 0o644))
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: 0\n"), 0o644))
	_, err := LoadConfig(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.EnemyKinds = []entity.EnemyKind{{Name: "zombie", Damage: 10, Weight: 1}}
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny board", func(c *Config) { c.Columns = 2 }},
		{"inverted wall range", func(c *Config) { c.WallCountRange = Range{Min: 4, Max: 2} }},
		{"negative food range", func(c *Config) { c.FoodCountRange = Range{Min: -1, Max: 2} }},
		{"level zero", func(c *Config) { c.Level = 0 }},
		{"no starting food", func(c *Config) { c.PlayerStartingFood = 0 }},
		{"harmless enemies", func(c *Config) { c.PerEnemyDamage = 0 }},
		{"harmless kind", func(c *Config) { c.EnemyKinds = []entity.EnemyKind{{Name: "ghost", Weight: 1}} }},
		{"soft walls", func(c *Config) { c.WallHitPoints = 0 }},
		{"worthless soda", func(c *Config) { c.PickupValue.Soda = 0 }},
		{"negative delay", func(c *Config) { c.TurnDelay = -1 }},
		{"start off board", func(c *Config) { c.PlayerStart = grid.Cell{X: -1, Y: 0} }},
		{"start in pool", func(c *Config) { c.PlayerStart = grid.Cell{X: 3, Y: 3} }},
		{"start on exit", func(c *Config) { c.PlayerStart = grid.Cell{X: 7, Y: 7} }},
		{"pool too small", func(c *Config) { c.WallCountRange = Range{Min: 30, Max: 34} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = 0
	cfg.MoveCost = -1
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "level 0")
	assert.Contains(t, err.Error(), "moveCost -1")
}

func TestKindsFallsBackToPerEnemyDamage(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []entity.EnemyKind{{Name: "enemy", Damage: 10, Weight: 1}}, cfg.Kinds())

	cfg.EnemyKinds = []entity.EnemyKind{{Name: "zombie", Damage: 20, Weight: 2}}
	assert.Equal(t, cfg.EnemyKinds, cfg.Kinds())
}

func TestConversions(t *testing.T) {
	cfg := DefaultConfig()
	gen := cfg.Generator()
	assert.Equal(t, 8, gen.Columns)
	assert.Equal(t, 5, gen.WallCount.Min)
	assert.Equal(t, 9, gen.WallCount.Max)
	assert.Equal(t, 3, gen.WallHP)
	assert.Equal(t, 20, gen.SodaValue)
	assert.Len(t, gen.EnemyKinds, 1)

	rules := cfg.Rules(42)
	assert.Equal(t, 42, rules.StartingFood)
	assert.Equal(t, 1, rules.MoveCost)
	assert.Equal(t, 1, rules.WallDamage)
	assert.InDelta(t, 0.1, rules.MoveTime, 1e-9)
	assert.False(t, rules.AutoSettle)
}
