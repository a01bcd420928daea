package ui

import (
	"context"

	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// Window is the raylib window sized to the board.
type Window struct {
	grid types.Grid
}

// OpenWindow creates the window. Escape is delivered as an event rather
// than closing the window directly.
func OpenWindow(grid types.Grid, title string) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(grid.Width*grid.CellSize), int32(grid.Height*grid.CellSize), title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window could not be created")
	}
	rl.SetExitKey(rl.KeyNull)
	return &Window{grid: grid}, nil
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// Renderer returns a renderer drawing into the window.
func (w *Window) Renderer() *Renderer {
	return NewRenderer(w.grid)
}

// Input polls raylib's key queue.
type Input struct{}

// Poll drains the keys pressed since the last frame.
func (Input) Poll() []types.Event {
	var events []types.Event
	if rl.WindowShouldClose() {
		events = append(events, types.EventQuit)
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev := keyEvent(key); ev != types.EventNone {
			events = append(events, ev)
		}
	}
	return events
}

func keyEvent(key int32) types.Event {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return types.EventUp
	case rl.KeyDown, rl.KeyS:
		return types.EventDown
	case rl.KeyLeft, rl.KeyA:
		return types.EventLeft
	case rl.KeyRight, rl.KeyD:
		return types.EventRight
	case rl.KeyEscape:
		return types.EventEscape
	default:
		return types.EventNone
	}
}

// Clock paces the loop through raylib's target FPS. The wait itself happens
// in EndDrawing.
type Clock struct {
	rate int
}

func (c *Clock) Tick(ctx context.Context, rate int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rate != c.rate {
		rl.SetTargetFPS(int32(rate))
		c.rate = rate
	}
	return nil
}
