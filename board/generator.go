package board

import (
	"fmt"
	"math/bits"

	"chosenoffset.com/scavenger/dice"
	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/grid"
)

// Count is an inclusive range for a randomly sized batch of entities
type Count struct {
	Min int
	Max int
}

// GeneratorConfig holds configuration for level generation
type GeneratorConfig struct {
	Columns     int
	Rows        int
	WallCount   Count
	FoodCount   Count
	WallHP      int
	FoodValue   int
	SodaValue   int
	EnemyKinds  []entity.EnemyKind // At least one kind
	PlayerStart grid.Cell
}

// Generator lays out a level: breakable walls, pickups, enemies, the exit
// and the player.
type Generator struct {
	config GeneratorConfig
	roller *dice.Roller
	pool   *grid.Pool
}

// NewGenerator creates a new level generator
func NewGenerator(config GeneratorConfig, roller *dice.Roller) *Generator {
	return &Generator{
		config: config,
		roller: roller,
		pool:   &grid.Pool{},
	}
}

// EnemyCount returns floor(log2(level)), never negative.
func EnemyCount(level int) int {
	if level < 1 {
		return 0
	}
	return bits.Len(uint(level)) - 1
}

// ExitCell is the fixed top-right corner of a columns x rows board.
func ExitCell(columns, rows int) grid.Cell {
	return grid.Cell{X: columns - 1, Y: rows - 1}
}

// Generate builds the board for a level. On error no board is returned.
func (g *Generator) Generate(level int) (*Board, error) {
	if level < 1 {
		return nil, fmt.Errorf("generate level %d: level must be positive", level)
	}
	cfg := g.config
	if len(cfg.EnemyKinds) == 0 {
		return nil, fmt.Errorf("generate level %d: no enemy kinds configured", level)
	}
	exit := ExitCell(cfg.Columns, cfg.Rows)
	if cfg.PlayerStart == exit {
		return nil, fmt.Errorf("generate level %d: player start %v is the exit: %w",
			level, exit, ErrPlacementConflict)
	}
	b := New(cfg.Columns, cfg.Rows, level)

	// Reset the pool and keep the fixed placements out of it, so nothing
	// drawn below can land on the player or the exit.
	g.pool.InitializeFreeCells(cfg.Columns, cfg.Rows)
	g.pool.Reserve(cfg.PlayerStart)
	g.pool.Reserve(exit)

	enemies := EnemyCount(level)
	worst := cfg.WallCount.Max + cfg.FoodCount.Max + enemies
	if worst > g.pool.Len() {
		return nil, fmt.Errorf("generate level %d: up to %d placements, %d free cells: %w",
			level, worst, g.pool.Len(), grid.ErrExhausted)
	}

	err := g.layoutAtRandom(b, cfg.WallCount, func(c grid.Cell) *entity.Entity {
		return entity.NewWall(c, cfg.WallHP)
	})
	if err != nil {
		return nil, fmt.Errorf("generate level %d: walls: %w", level, err)
	}

	err = g.layoutAtRandom(b, cfg.FoodCount, func(c grid.Cell) *entity.Entity {
		kind := entity.PickupKinds[g.roller.Intn(len(entity.PickupKinds))]
		value := cfg.FoodValue
		if kind == entity.PickupSoda {
			value = cfg.SodaValue
		}
		return entity.NewPickup(c, kind, value)
	})
	if err != nil {
		return nil, fmt.Errorf("generate level %d: pickups: %w", level, err)
	}

	weights := make([]int, len(cfg.EnemyKinds))
	for i, k := range cfg.EnemyKinds {
		weights[i] = k.Weight
	}
	err = g.layoutAtRandom(b, Count{Min: enemies, Max: enemies}, func(c grid.Cell) *entity.Entity {
		return entity.NewEnemy(c, cfg.EnemyKinds[g.roller.PickWeighted(weights)])
	})
	if err != nil {
		return nil, fmt.Errorf("generate level %d: enemies: %w", level, err)
	}

	if _, err := b.Place(entity.NewExit(exit)); err != nil {
		return nil, fmt.Errorf("generate level %d: exit: %w", level, err)
	}
	if _, err := b.Place(entity.NewPlayer(cfg.PlayerStart)); err != nil {
		return nil, fmt.Errorf("generate level %d: player: %w", level, err)
	}

	return b, nil
}

// layoutAtRandom places a random number of entities in [count.Min,
// count.Max], each on a distinct cell drawn from the pool.
func (g *Generator) layoutAtRandom(b *Board, count Count, spawn func(grid.Cell) *entity.Entity) error {
	n := g.roller.Range(count.Min, count.Max)
	for i := 0; i < n; i++ {
		c, err := g.pool.Sample(g.roller)
		if err != nil {
			return err
		}
		if _, err := b.Place(spawn(c)); err != nil {
			return err
		}
	}
	return nil
}
