// Package ebitenui plays the game in an ebiten window. ebiten owns the main
// loop here, so the game is ticked from Update at the configured TPS.
package ebitenui

import (
	"image/color"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
)

// Frontend adapts a game.Game to ebiten.Game.
type Frontend struct {
	game *game.Game
	keys []ebiten.Key
}

func New(g *game.Game) *Frontend {
	return &Frontend{game: g}
}

// Run opens the window and blocks until the player quits or the window is
// closed.
func Run(g *game.Game, speed int, title string) error {
	w, h := g.Grid.Width*g.Grid.CellSize, g.Grid.Height*g.Grid.CellSize
	ebiten.SetTPS(speed)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)

	err := ebiten.RunGame(New(g))
	if err != nil && err != ebiten.Termination {
		return errors.Wrap(err, "ebiten")
	}
	return nil
}

func (f *Frontend) Update() error {
	f.keys = inpututil.AppendJustPressedKeys(f.keys[:0])
	events := make([]types.Event, 0, len(f.keys))
	for _, k := range f.keys {
		if ev := keyEvent(k); ev != types.EventNone {
			events = append(events, ev)
		}
	}
	if !f.game.Tick(events) {
		return ebiten.Termination
	}
	return nil
}

func (f *Frontend) Draw(screen *ebiten.Image) {
	// screenRenderer never fails to present.
	_ = f.game.Draw(&screenRenderer{screen: screen, grid: f.game.Grid})
}

func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return f.game.Grid.Width * f.game.Grid.CellSize, f.game.Grid.Height * f.game.Grid.CellSize
}

func keyEvent(k ebiten.Key) types.Event {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return types.EventUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return types.EventDown
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return types.EventLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return types.EventRight
	case ebiten.KeyEscape:
		return types.EventEscape
	case ebiten.KeyQ:
		return types.EventQuit
	default:
		return types.EventNone
	}
}

type screenRenderer struct {
	screen *ebiten.Image
	grid   types.Grid
}

func (r *screenRenderer) Clear(c types.Color) {
	r.screen.Fill(toRGBA(c))
}

func (r *screenRenderer) DrawCell(p types.Point, c types.Color) {
	x, y := r.grid.Pixel(p)
	size := float32(r.grid.CellSize)
	vector.DrawFilledRect(r.screen, float32(x), float32(y), size, size, toRGBA(c), false)
	vector.StrokeRect(r.screen, float32(x), float32(y), size, size, 1, toRGBA(types.BorderColor), false)
}

func (r *screenRenderer) Present() error {
	return nil
}

func toRGBA(c types.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
