package ui

import (
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer paints the board into the raylib window. Every cell is a filled
// square with a one pixel border.
type Renderer struct {
	grid     types.Grid
	cellSize int32
	border   rl.Color
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{
		grid:     grid,
		cellSize: int32(grid.CellSize),
		border:   toRaylib(types.BorderColor),
	}
}

// Clear opens a new frame.
func (r *Renderer) Clear(c types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(c))
}

func (r *Renderer) DrawCell(p types.Point, c types.Color) {
	x, y := r.grid.Pixel(p)
	rl.DrawRectangle(int32(x), int32(y), r.cellSize, r.cellSize, toRaylib(c))
	rl.DrawRectangleLines(int32(x), int32(y), r.cellSize, r.cellSize, r.border)
}

// Present closes the frame. raylib waits here to honour the target FPS.
func (r *Renderer) Present() error {
	rl.EndDrawing()
	return nil
}

func toRaylib(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
