package render

import (
	"errors"
	"image/color"

	"chosenoffset.com/scavenger/internal/game"
)

// ErrQuit is returned from Game.Update when the player asks to leave.
var ErrQuit = errors.New("quit")

// Image represents a renderable surface. It abstracts the underlying image
// implementation.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Vector operations
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color)
	MeasureText(text string) (width, height int)
}

// InputManager handles input from the user.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyR // Restart after game over
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
)

// ReadIntent turns this frame's key presses into a player intent. Only one
// direction is taken per frame; vertical keys win over horizontal ones.
func ReadIntent(input InputManager) game.Intent {
	var intent game.Intent
	switch {
	case input.IsKeyJustPressed(KeyW) || input.IsKeyJustPressed(KeyUp):
		intent.DY = 1
	case input.IsKeyJustPressed(KeyS) || input.IsKeyJustPressed(KeyDown):
		intent.DY = -1
	case input.IsKeyJustPressed(KeyA) || input.IsKeyJustPressed(KeyLeft):
		intent.DX = -1
	case input.IsKeyJustPressed(KeyD) || input.IsKeyJustPressed(KeyRight):
		intent.DX = 1
	}
	intent.Restart = input.IsKeyJustPressed(KeyR) || input.IsKeyJustPressed(KeySpace)
	return intent
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
