// Package terminal runs the game in a text terminal through tcell. Each
// board cell is drawn two characters wide so the grid looks square.
package terminal

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/scavenger/internal/game"
	"chosenoffset.com/scavenger/internal/render"
)

const (
	frame   = 16 * time.Millisecond // ~60 FPS
	originX = 1
	originY = 1
)

// Terminal draws a Director onto a tcell screen and feeds it key presses.
// Moves are shown at their destination at once, so the session should be
// created with auto-settle on.
type Terminal struct {
	screen   tcell.Screen
	director *game.Director
	pending  game.Intent
}

// New creates a terminal frontend. The screen must already be initialized.
func New(screen tcell.Screen, d *game.Director) *Terminal {
	return &Terminal{screen: screen, director: d}
}

// Run polls input and ticks the director until the player quits, the
// context ends, or the director fails.
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go t.pollEvents(eventChan, done)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !t.HandleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := t.Tick(dt); err != nil {
				return err
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func (t *Terminal) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return // screen finalized
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent records a key press as this frame's intent. It returns false
// when the player asks to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.pending = game.Intent{DY: 1}
		case tcell.KeyDown:
			t.pending = game.Intent{DY: -1}
		case tcell.KeyLeft:
			t.pending = game.Intent{DX: -1}
		case tcell.KeyRight:
			t.pending = game.Intent{DX: 1}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w', 'k':
				t.pending = game.Intent{DY: 1}
			case 's', 'j':
				t.pending = game.Intent{DY: -1}
			case 'a', 'h':
				t.pending = game.Intent{DX: -1}
			case 'd', 'l':
				t.pending = game.Intent{DX: 1}
			case 'r', ' ':
				t.pending = game.Intent{Restart: true}
			case 'q':
				return false
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// Tick applies the pending intent, advances the director and redraws.
func (t *Terminal) Tick(dt float64) error {
	intent := t.pending
	t.pending = game.Intent{}
	if err := t.director.Update(dt, intent); err != nil {
		log.Printf("[Terminal] Update failed: %v", err)
		return err
	}
	t.Draw()
	return nil
}

// Draw renders the current frame.
func (t *Terminal) Draw() {
	t.screen.Clear()
	s := t.director.Session()
	b := s.Board()

	if banner := t.director.Banner(); banner != "" {
		w, h := t.screen.Size()
		t.text((w-len([]rune(banner)))/2, h/2, banner, render.ColorText)
		if t.director.Phase() == game.PhaseGameOver {
			hint := "Press r to start again, q to quit"
			t.text((w-len(hint))/2, h/2+2, hint, render.ColorText)
		}
		t.screen.Show()
		return
	}

	for _, tile := range render.Tiles(b) {
		t.cell(tile.Cell.X, tile.Cell.Y, b.Rows, tile.Glyph, tile.Color)
	}
	for _, sp := range render.Sprites(b, nil) {
		t.cell(int(sp.X), int(sp.Y), b.Rows, sp.Glyph, sp.Color)
	}

	hud := fmt.Sprintf("Day %d   Food: %d", s.Level(), s.Scheduler().Food())
	if msgs := t.director.Messages(); len(msgs) > 0 {
		hud += "   " + msgs[len(msgs)-1].Text
	}
	t.text(originX, originY+b.Rows+3, hud, render.ColorText)
	t.screen.Show()
}

// ScreenPos returns the terminal column and row of a board cell.
func ScreenPos(x, y, rows int) (col, row int) {
	return originX + (x+1)*2, originY + rows - y
}

func (t *Terminal) cell(x, y, rows int, glyph rune, clr color.RGBA) {
	col, row := ScreenPos(x, y, rows)
	t.screen.SetContent(col, row, glyph, nil, style(clr))
}

func (t *Terminal) text(x, y int, s string, clr color.RGBA) {
	st := style(clr)
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, st)
	}
}

func style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
