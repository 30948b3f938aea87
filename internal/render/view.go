package render

import (
	"fmt"
	"image/color"

	"chosenoffset.com/scavenger/entity"
	"chosenoffset.com/scavenger/internal/game"
	"chosenoffset.com/scavenger/turn"
)

const (
	// FrameTime is the fixed tick length the engines run at.
	FrameTime = 1.0 / 60.0

	flashTime = 0.25
	hudHeight = 24
)

// View presents a Director through a Renderer and feeds it input. It
// implements Game, so any Engine can run it.
type View struct {
	Director *game.Director
	Motion   *Motion
	Renderer Renderer
	Input    InputManager
	TileSize int

	flashes map[entity.ID]float64 // Seconds left on a hit/chop flash
}

// NewView wires a Director's move events into a fresh Motion tracker and
// reports finished transitions back to the scheduler.
func NewView(d *game.Director, r Renderer, input InputManager, tileSize int) *View {
	v := &View{
		Director: d,
		Motion:   NewMotion(),
		Renderer: r,
		Input:    input,
		TileSize: tileSize,
		flashes:  make(map[entity.ID]float64),
	}
	d.OnEntityMoved = v.Motion.Start
	d.OnEntityRemoved = func(id entity.ID) {
		v.Motion.Forget(id)
		delete(v.flashes, id)
	}
	d.OnReaction = func(id entity.ID, kind turn.ReactionKind) {
		switch kind {
		case turn.ReactionHit, turn.ReactionDamaged, turn.ReactionAttack, turn.ReactionChop:
			v.flashes[id] = flashTime
		}
	}
	d.OnLevelStart = func(int) {
		v.Motion.Clear()
		clear(v.flashes)
	}
	v.Motion.OnSettled = func(id entity.ID) {
		d.Session().Scheduler().Settle(id)
	}
	return v
}

// Update handles one tick of input and timers.
func (v *View) Update() error {
	if v.Input.IsKeyJustPressed(KeyEscape) {
		return ErrQuit
	}
	intent := ReadIntent(v.Input)

	v.Motion.Update(FrameTime)
	for id, left := range v.flashes {
		if left -= FrameTime; left <= 0 {
			delete(v.flashes, id)
		} else {
			v.flashes[id] = left
		}
	}
	return v.Director.Update(FrameTime, intent)
}

// Layout returns the size that fits the board, its outer ring and the HUD.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := v.Director.Session().Board()
	return (b.Columns + 2) * v.TileSize, (b.Rows+2)*v.TileSize + hudHeight
}

// ScreenPos converts a cell-unit position to the top-left pixel of its tile.
// Cell Y grows upward; screen Y grows downward.
func (v *View) ScreenPos(x, y float64) (float32, float32) {
	rows := v.Director.Session().Board().Rows
	ts := float64(v.TileSize)
	return float32((x + 1) * ts), float32((float64(rows) - y) * ts)
}

// Draw renders the board, the HUD and any banner.
func (v *View) Draw(screen Image) {
	screen.Fill(ColorBackground)
	b := v.Director.Session().Board()
	ts := float32(v.TileSize)

	if banner := v.Director.Banner(); banner != "" {
		v.drawBanner(screen, banner)
		return
	}

	for _, t := range Tiles(b) {
		x, y := v.ScreenPos(float64(t.Cell.X), float64(t.Cell.Y))
		v.Renderer.FillRect(screen, x, y, ts, ts, t.Color)
	}

	inset := ts / 8
	for _, s := range Sprites(b, v.Motion) {
		x, y := v.ScreenPos(s.X, s.Y)
		var clr color.Color = s.Color
		if _, ok := v.flashes[s.ID]; ok {
			clr = ColorFlash
		}
		v.Renderer.FillRect(screen, x+inset, y+inset, ts-2*inset, ts-2*inset, clr)
		w, h := v.Renderer.MeasureText(string(s.Glyph))
		v.Renderer.DrawText(screen, string(s.Glyph), int(x)+(v.TileSize-w)/2, int(y)+(v.TileSize-h)/2, ColorBackground)
	}

	v.drawHUD(screen)
}

func (v *View) drawHUD(screen Image) {
	s := v.Director.Session()
	_, height := screen.Size()
	hud := fmt.Sprintf("Day %d   Food: %d", s.Level(), s.Scheduler().Food())
	if msgs := v.Director.Messages(); len(msgs) > 0 {
		hud += "   " + msgs[len(msgs)-1].Text
	}
	_, h := v.Renderer.MeasureText(hud)
	v.Renderer.DrawText(screen, hud, 8, height-hudHeight+(hudHeight-h)/2, ColorText)
}

func (v *View) drawBanner(screen Image, text string) {
	width, height := screen.Size()
	w, h := v.Renderer.MeasureText(text)
	v.Renderer.DrawText(screen, text, (width-w)/2, (height-h)/2, ColorText)
	if v.Director.Phase() == game.PhaseGameOver {
		hint := "Press R to start again"
		hw, _ := v.Renderer.MeasureText(hint)
		v.Renderer.DrawText(screen, hint, (width-hw)/2, (height-h)/2+2*h, ColorText)
	}
}
