// Package simulation provides configuration for the level rules.
// Rules are loaded from YAML files so each run can tune its own board.
package simulation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/scavenger/board"
	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/grid"
	"chosenoffset.com/scavenger/turn"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Range is an inclusive count range
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// PickupValues holds the food restored by each pickup kind
type PickupValues struct {
	Food int `yaml:"food"`
	Soda int `yaml:"soda"`
}

// Config holds all rules for a run
type Config struct {
	// Board
	Columns        int       `yaml:"columns"`
	Rows           int       `yaml:"rows"`
	WallCountRange Range     `yaml:"wallCountRange"`
	FoodCountRange Range     `yaml:"foodCountRange"`
	Level          int       `yaml:"level"`       // Starting level
	PlayerStart    grid.Cell `yaml:"playerStart"` // Spawn cell, outside the random pool

	// Food economy
	PlayerStartingFood int          `yaml:"playerStartingFood"`
	PerEnemyDamage     int          `yaml:"perEnemyDamage"` // Used when EnemyKinds is empty
	PerWallDamage      int          `yaml:"perWallDamage"`
	PickupValue        PickupValues `yaml:"pickupValue"`
	MoveCost           int          `yaml:"moveCost"`
	WallHitPoints      int          `yaml:"wallHitPoints"`

	EnemyKinds []entity.EnemyKind `yaml:"enemyKinds"`

	// Pacing, in seconds
	MoveTime        float64 `yaml:"moveTime"`
	TurnDelay       float64 `yaml:"turnDelay"`
	LevelStartDelay float64 `yaml:"levelStartDelay"`
	RestartDelay    float64 `yaml:"restartDelay"`

	Seed int64 `yaml:"seed"` // 0 picks a time-based seed
}

// DefaultConfig returns the classic 8x8 scavenger rules
func DefaultConfig() *Config {
	return &Config{
		Columns:            8,
		Rows:               8,
		WallCountRange:     Range{Min: 5, Max: 9},
		FoodCountRange:     Range{Min: 1, Max: 5},
		Level:              1,
		PlayerStart:        grid.Cell{X: 0, Y: 0},
		PlayerStartingFood: 100,
		PerEnemyDamage:     10,
		PerWallDamage:      1,
		PickupValue:        PickupValues{Food: 10, Soda: 20},
		MoveCost:           1,
		WallHitPoints:      3,
		MoveTime:           0.1,
		TurnDelay:          0.1,
		LevelStartDelay:    2,
		RestartDelay:       1,
	}
}

// LoadConfig loads config from a YAML file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports every problem at once, each wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Columns < 3 || c.Rows < 3 {
		bad("board %dx%d is smaller than 3x3", c.Columns, c.Rows)
	}
	if r := c.WallCountRange; r.Min < 0 || r.Min > r.Max {
		bad("wallCountRange {%d, %d}", r.Min, r.Max)
	}
	if r := c.FoodCountRange; r.Min < 0 || r.Min > r.Max {
		bad("foodCountRange {%d, %d}", r.Min, r.Max)
	}
	if c.Level < 1 {
		bad("level %d must be positive", c.Level)
	}
	if c.PlayerStartingFood <= 0 {
		bad("playerStartingFood %d must be positive", c.PlayerStartingFood)
	}
	if len(c.EnemyKinds) == 0 && c.PerEnemyDamage <= 0 {
		bad("perEnemyDamage %d must be positive", c.PerEnemyDamage)
	}
	for _, k := range c.EnemyKinds {
		if k.Damage <= 0 {
			bad("enemy kind %q damage %d must be positive", k.Name, k.Damage)
		}
		if k.Weight < 0 {
			bad("enemy kind %q weight %d is negative", k.Name, k.Weight)
		}
	}
	if c.PerWallDamage <= 0 || c.WallHitPoints <= 0 {
		bad("wall damage %d and hit points %d must be positive", c.PerWallDamage, c.WallHitPoints)
	}
	if c.PickupValue.Food <= 0 || c.PickupValue.Soda <= 0 {
		bad("pickup values {%d, %d} must be positive", c.PickupValue.Food, c.PickupValue.Soda)
	}
	if c.MoveCost < 0 {
		bad("moveCost %d is negative", c.MoveCost)
	}
	if c.MoveTime < 0 || c.TurnDelay < 0 || c.LevelStartDelay < 0 || c.RestartDelay < 0 {
		bad("delays must not be negative")
	}

	if c.Columns >= 3 && c.Rows >= 3 {
		start := c.PlayerStart
		if !grid.InBounds(c.Columns, c.Rows, start) {
			bad("playerStart %v outside the %dx%d board", start, c.Columns, c.Rows)
		} else if c.inPool(start) {
			bad("playerStart %v lies inside the random placement area", start)
		}
		if start == board.ExitCell(c.Columns, c.Rows) {
			bad("playerStart %v is the exit", start)
		}
		pool := (c.Columns - 2) * (c.Rows - 2)
		if c.WallCountRange.Max+c.FoodCountRange.Max > pool {
			bad("up to %d walls and pickups do not fit %d free cells",
				c.WallCountRange.Max+c.FoodCountRange.Max, pool)
		}
	}

	return errors.Join(errs...)
}

func (c *Config) inPool(cell grid.Cell) bool {
	return cell.X >= 1 && cell.X <= c.Columns-2 && cell.Y >= 1 && cell.Y <= c.Rows-2
}

// Kinds returns the configured enemy kinds, or a single kind dealing
// PerEnemyDamage when none are listed.
func (c *Config) Kinds() []entity.EnemyKind {
	if len(c.EnemyKinds) > 0 {
		return append([]entity.EnemyKind(nil), c.EnemyKinds...)
	}
	return []entity.EnemyKind{{Name: "enemy", Damage: c.PerEnemyDamage, Weight: 1}}
}

// Generator converts the config into board generation settings
func (c *Config) Generator() board.GeneratorConfig {
	return board.GeneratorConfig{
		Columns:     c.Columns,
		Rows:        c.Rows,
		WallCount:   board.Count{Min: c.WallCountRange.Min, Max: c.WallCountRange.Max},
		FoodCount:   board.Count{Min: c.FoodCountRange.Min, Max: c.FoodCountRange.Max},
		WallHP:      c.WallHitPoints,
		FoodValue:   c.PickupValue.Food,
		SodaValue:   c.PickupValue.Soda,
		EnemyKinds:  c.Kinds(),
		PlayerStart: c.PlayerStart,
	}
}

// Rules converts the config into scheduler rules for a level entered with
// the given food.
func (c *Config) Rules(food int) turn.Rules {
	return turn.Rules{
		StartingFood: food,
		MoveCost:     c.MoveCost,
		WallDamage:   c.PerWallDamage,
		MoveTime:     c.MoveTime,
	}
}
