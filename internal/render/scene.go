package render

import (
	"image/color"
	"unicode"

	"chosenoffset.com/scavenger/board"
	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/grid"
)

// Palette
var (
	ColorBackground = color.RGBA{12, 10, 16, 255}
	ColorFloor      = color.RGBA{48, 40, 36, 255}
	ColorOuterWall  = color.RGBA{20, 20, 28, 255}
	ColorWall       = color.RGBA{120, 96, 64, 255}
	ColorPlayer     = color.RGBA{90, 200, 255, 255}
	ColorEnemy      = color.RGBA{220, 60, 60, 255}
	ColorFood       = color.RGBA{120, 210, 90, 255}
	ColorSoda       = color.RGBA{240, 200, 70, 255}
	ColorExit       = color.RGBA{250, 250, 250, 255}
	ColorText       = color.RGBA{255, 255, 255, 255}
	ColorFlash      = color.RGBA{255, 140, 140, 255}
)

// Tile is one background cell, including the outer ring.
type Tile struct {
	Cell    grid.Cell
	Terrain grid.Terrain
	Glyph   rune
	Color   color.RGBA
}

// Sprite is one entity as it should be drawn this frame. X and Y are in
// cell units and may be fractional mid-move.
type Sprite struct {
	ID    entity.ID
	Role  entity.Role
	X, Y  float64
	Glyph rune
	Color color.RGBA
}

// Tiles lists the floor and the outer ring, bottom row first.
func Tiles(b *board.Board) []Tile {
	tiles := make([]Tile, 0, (b.Columns+2)*(b.Rows+2))
	for y := -1; y <= b.Rows; y++ {
		for x := -1; x <= b.Columns; x++ {
			c := grid.Cell{X: x, Y: y}
			t := Tile{Cell: c, Terrain: b.Terrain(c), Glyph: '.', Color: ColorFloor}
			if t.Terrain == grid.TerrainOuterWall {
				t.Glyph, t.Color = '▓', ColorOuterWall
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Sprites lists the live entities in draw order: walk-over triggers first,
// then blockers, the player last.
func Sprites(b *board.Board, m *Motion) []Sprite {
	var under, over []Sprite
	var player *Sprite
	for _, e := range b.Entities() {
		s := Sprite{ID: e.ID, Role: e.Role, Glyph: Glyph(e), Color: Color(e)}
		s.X, s.Y = float64(e.Cell.X), float64(e.Cell.Y)
		if m != nil {
			s.X, s.Y = m.Position(e.ID, e.Cell)
		}
		switch {
		case e.Role == entity.RolePlayer:
			player = &s
		case e.Blocking:
			over = append(over, s)
		default:
			under = append(under, s)
		}
	}
	sprites := append(under, over...)
	if player != nil {
		sprites = append(sprites, *player)
	}
	return sprites
}

// Glyph returns the character an entity is drawn with.
func Glyph(e *entity.Entity) rune {
	switch e.Role {
	case entity.RolePlayer:
		return '@'
	case entity.RoleEnemy:
		for _, r := range e.Kind {
			return unicode.ToUpper(r)
		}
		return 'E'
	case entity.RoleWall:
		return '#'
	case entity.RolePickup:
		if e.Pickup == entity.PickupSoda {
			return '!'
		}
		return '%'
	case entity.RoleExit:
		return '>'
	default:
		return '?'
	}
}

// Color returns an entity's base color. Walls darken as they lose hit
// points.
func Color(e *entity.Entity) color.RGBA {
	switch e.Role {
	case entity.RolePlayer:
		return ColorPlayer
	case entity.RoleEnemy:
		return ColorEnemy
	case entity.RoleWall:
		c := ColorWall
		if e.HP == 1 {
			c = color.RGBA{shade(c.R, 1, 2), shade(c.G, 1, 2), shade(c.B, 1, 2), 255}
		} else if e.HP == 2 {
			c = color.RGBA{shade(c.R, 3, 4), shade(c.G, 3, 4), shade(c.B, 3, 4), 255}
		}
		return c
	case entity.RolePickup:
		if e.Pickup == entity.PickupSoda {
			return ColorSoda
		}
		return ColorFood
	case entity.RoleExit:
		return ColorExit
	default:
		return ColorText
	}
}

// shade scales a colour channel by num/den without overflowing uint8.
func shade(v uint8, num, den int) uint8 {
	return uint8(int(v) * num / den)
}
